package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	messageDomain "github.com/allisson/messaging/internal/message/domain"
	"github.com/allisson/messaging/internal/message/usecase/mocks"
)

// fixedClock returns a constant time for deterministic assertions.
type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

func newTestMessageUseCase(repo *mocks.MockMessageRepository) MessageUseCase {
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMessageUseCase(repo, clock, logger)
}

func TestMessageUseCase_Send(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.Must(uuid.NewV7())
	senderID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(message *messageDomain.Message) bool {
			return message.GroupID == groupID &&
				message.SenderID == senderID &&
				message.Text == "hello" &&
				message.ID != uuid.Nil
		})).Return(nil).Once()

		message, err := newTestMessageUseCase(repo).Send(ctx, groupID, senderID, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", message.Text)
		assert.Equal(t, senderID, message.SenderID)
		repo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		_, err := newTestMessageUseCase(repo).Send(ctx, groupID, senderID, "hello")
		assert.Error(t, err)
	})
}

func TestMessageUseCase_Like(t *testing.T) {
	ctx := context.Background()
	messageID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}

	message := &messageDomain.Message{ID: messageID}

	t.Run("FirstToggleLikes", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		withLike := &messageDomain.Message{ID: messageID, Likes: []uuid.UUID{userID}}
		repo.On("GetByID", ctx, messageID).Return(message, nil).Once()
		repo.On("AddLike", ctx, messageID, userID).Return(true, nil).Once()
		repo.On("GetByID", ctx, messageID).Return(withLike, nil).Once()

		got, liked, err := newTestMessageUseCase(repo).Like(ctx, messageID, identity)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.True(t, got.LikedBy(userID))
		repo.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SecondToggleUnlikes", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(message, nil).Twice()
		repo.On("AddLike", ctx, messageID, userID).Return(false, nil).Once()
		repo.On("RemoveLike", ctx, messageID, userID).Return(true, nil).Once()

		got, liked, err := newTestMessageUseCase(repo).Like(ctx, messageID, identity)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.False(t, got.LikedBy(userID))
		repo.AssertExpectations(t)
	})

	t.Run("UnknownMessage", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(nil, messageDomain.ErrMessageNotFound).Once()

		_, _, err := newTestMessageUseCase(repo).Like(ctx, messageID, identity)
		assert.ErrorIs(t, err, messageDomain.ErrMessageNotFound)
		repo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMessageUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	messageID := uuid.Must(uuid.NewV7())
	senderID := uuid.Must(uuid.NewV7())
	otherID := uuid.Must(uuid.NewV7())

	message := &messageDomain.Message{ID: messageID, SenderID: senderID}

	t.Run("SenderMayDelete", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(message, nil).Once()
		repo.On("Delete", ctx, messageID).Return(nil).Once()

		err := newTestMessageUseCase(repo).Delete(ctx, messageID, &authDomain.Identity{UserID: senderID})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("AdminMayDeleteAnyMessage", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(message, nil).Once()
		repo.On("Delete", ctx, messageID).Return(nil).Once()

		err := newTestMessageUseCase(repo).Delete(ctx, messageID, &authDomain.Identity{UserID: otherID, IsAdmin: true})
		require.NoError(t, err)
	})

	t.Run("OtherUserIsForbiddenWithoutMutation", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(message, nil).Once()

		err := newTestMessageUseCase(repo).Delete(ctx, messageID, &authDomain.Identity{UserID: otherID})
		assert.ErrorIs(t, err, messageDomain.ErrDeleteForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("UnknownMessage", func(t *testing.T) {
		repo := &mocks.MockMessageRepository{}
		repo.On("GetByID", ctx, messageID).Return(nil, messageDomain.ErrMessageNotFound).Once()

		err := newTestMessageUseCase(repo).Delete(ctx, messageID, &authDomain.Identity{UserID: senderID})
		assert.ErrorIs(t, err, messageDomain.ErrMessageNotFound)
	})
}

func TestMessageUseCase_ListByGroup(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.Must(uuid.NewV7())

	repo := &mocks.MockMessageRepository{}
	messages := []*messageDomain.Message{
		{ID: uuid.Must(uuid.NewV7()), GroupID: groupID, Text: "first"},
		{ID: uuid.Must(uuid.NewV7()), GroupID: groupID, Text: "second"},
	}
	repo.On("ListByGroup", ctx, groupID).Return(messages, nil).Once()

	got, err := newTestMessageUseCase(repo).ListByGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
