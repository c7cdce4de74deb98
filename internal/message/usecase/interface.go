// Package usecase defines the interfaces and implementations for message use cases.
// Use cases orchestrate message posting, like toggling and sender-or-admin
// scoped deletion.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

// MessageRepository defines the interface for message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *messageDomain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*messageDomain.Message, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, messageID, userID uuid.UUID) (bool, error)
}

// MessageUseCase defines the interface for message management business logic.
type MessageUseCase interface {
	Send(ctx context.Context, groupID, senderID uuid.UUID, text string) (*messageDomain.Message, error)
	Like(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) (*messageDomain.Message, bool, error)
	Delete(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) error
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error)
}
