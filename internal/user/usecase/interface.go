// Package usecase defines the interfaces and implementations for user account use cases.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
	Update(ctx context.Context, user *userDomain.User) error
}

// UserUseCase defines the interface for account management business logic.
type UserUseCase interface {
	Create(ctx context.Context, input userDomain.CreateUserInput) (*userDomain.User, error)
	Update(ctx context.Context, id uuid.UUID, input userDomain.UpdateUserInput) (*userDomain.User, error)
}
