package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authService "github.com/allisson/messaging/internal/auth/service"
	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

type messageUseCase struct {
	messageRepo MessageRepository
	clock       authService.Clock
	logger      *slog.Logger
}

// Send posts a new message to a group on behalf of the sender.
func (m *messageUseCase) Send(ctx context.Context, groupID, senderID uuid.UUID, text string) (*messageDomain.Message, error) {
	now := m.clock.Now().UTC()
	message := &messageDomain.Message{
		ID:        uuid.Must(uuid.NewV7()),
		GroupID:   groupID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: now,
	}

	if err := m.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	m.logger.Debug("message sent",
		slog.String("message_id", message.ID.String()),
		slog.String("group_id", groupID.String()),
		slog.String("sender_id", senderID.String()))

	return message, nil
}

// Like toggles the caller's like on a message and returns the updated
// message. The boolean is true when the like was added and false when an
// existing like was removed. The insert relies on the unique constraint so
// two distinct callers never clobber each other.
func (m *messageUseCase) Like(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) (*messageDomain.Message, bool, error) {
	if _, err := m.messageRepo.GetByID(ctx, messageID); err != nil {
		return nil, false, err
	}

	liked, err := m.messageRepo.AddLike(ctx, messageID, identity.UserID)
	if err != nil {
		return nil, false, err
	}
	if !liked {
		// The caller had already liked the message, so this toggle removes it.
		if _, err := m.messageRepo.RemoveLike(ctx, messageID, identity.UserID); err != nil {
			return nil, false, err
		}
	}

	message, err := m.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, false, err
	}
	return message, liked, nil
}

// Delete removes a message. Only the sender or an administrator may delete;
// the permission check happens before any mutation.
func (m *messageUseCase) Delete(ctx context.Context, messageID uuid.UUID, identity *authDomain.Identity) error {
	message, err := m.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if !authDomain.OwnerOrAdmin(identity, message.SenderID) {
		return messageDomain.ErrDeleteForbidden
	}

	return m.messageRepo.Delete(ctx, messageID)
}

// ListByGroup fetches every message in a group ordered by creation time.
func (m *messageUseCase) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*messageDomain.Message, error) {
	return m.messageRepo.ListByGroup(ctx, groupID)
}

// NewMessageUseCase creates a new message use case with required dependencies.
func NewMessageUseCase(
	messageRepo MessageRepository,
	clock authService.Clock,
	logger *slog.Logger,
) MessageUseCase {
	return &messageUseCase{
		messageRepo: messageRepo,
		clock:       clock,
		logger:      logger,
	}
}
