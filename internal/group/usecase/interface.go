// Package usecase defines the interfaces and implementations for group use cases.
// Use cases orchestrate group lifecycle and membership changes between the
// group, user and message repositories.
package usecase

import (
	"context"

	"github.com/google/uuid"

	groupDomain "github.com/allisson/messaging/internal/group/domain"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// GroupRepository defines the interface for group persistence operations.
type GroupRepository interface {
	Create(ctx context.Context, group *groupDomain.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*groupDomain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string) ([]*groupDomain.Group, error)
	AddMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}

// UserRepository gives the group context read access to user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// MessageRepository gives the group context delete access to group messages
// for the optional deletion cascade.
type MessageRepository interface {
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
}

// GroupUseCase defines the interface for group management business logic.
type GroupUseCase interface {
	Create(ctx context.Context, name string) (*groupDomain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error)
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error)
	Search(ctx context.Context, name string) ([]*groupDomain.Group, error)
}
