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

	databaseMocks "github.com/allisson/messaging/internal/database/mocks"
	groupDomain "github.com/allisson/messaging/internal/group/domain"
	"github.com/allisson/messaging/internal/group/usecase/mocks"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// fixedClock returns a constant time for deterministic assertions.
type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

type groupUseCaseFixture struct {
	txManager   *databaseMocks.PassthroughTxManager
	groupRepo   *mocks.MockGroupRepository
	userRepo    *mocks.MockUserRepository
	messageRepo *mocks.MockMessageRepository
	clock       *fixedClock
}

func newGroupUseCaseFixture() *groupUseCaseFixture {
	return &groupUseCaseFixture{
		txManager:   &databaseMocks.PassthroughTxManager{},
		groupRepo:   &mocks.MockGroupRepository{},
		userRepo:    &mocks.MockUserRepository{},
		messageRepo: &mocks.MockMessageRepository{},
		clock:       &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func (f *groupUseCaseFixture) useCase(cascade bool) GroupUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGroupUseCase(f.txManager, f.groupRepo, f.userRepo, f.messageRepo, f.clock, cascade, logger)
}

func TestGroupUseCase_Create(t *testing.T) {
	ctx := context.Background()
	f := newGroupUseCaseFixture()

	f.groupRepo.On("Create", ctx, mock.MatchedBy(func(group *groupDomain.Group) bool {
		return group.Name == "backend" && group.CreatedAt.Equal(f.clock.now)
	})).Return(nil)

	group, err := f.useCase(false).Create(ctx, "backend")
	require.NoError(t, err)
	assert.Equal(t, "backend", group.Name)
	assert.Empty(t, group.Members)
	f.groupRepo.AssertExpectations(t)
}

func TestGroupUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.Must(uuid.NewV7())

	t.Run("WithoutCascadeLeavesMessages", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("Delete", mock.Anything, groupID).Return(nil)

		err := f.useCase(false).Delete(ctx, groupID)
		require.NoError(t, err)
		f.messageRepo.AssertNotCalled(t, "DeleteByGroup", mock.Anything, mock.Anything)
	})

	t.Run("WithCascadeDeletesMessagesFirst", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.messageRepo.On("DeleteByGroup", mock.Anything, groupID).Return(int64(4), nil)
		f.groupRepo.On("Delete", mock.Anything, groupID).Return(nil)

		err := f.useCase(true).Delete(ctx, groupID)
		require.NoError(t, err)
		f.messageRepo.AssertExpectations(t)
		f.groupRepo.AssertExpectations(t)
	})

	t.Run("UnknownGroup", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("Delete", mock.Anything, groupID).Return(groupDomain.ErrGroupNotFound)

		err := f.useCase(false).Delete(ctx, groupID)
		assert.ErrorIs(t, err, groupDomain.ErrGroupNotFound)
	})
}

func TestGroupUseCase_AddMember(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	group := &groupDomain.Group{ID: groupID, Name: "backend"}
	user := &userDomain.User{ID: userID, Username: "alice"}

	t.Run("Success", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		updated := &groupDomain.Group{ID: groupID, Name: "backend", Members: []uuid.UUID{userID}}

		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.groupRepo.On("AddMember", ctx, groupID, userID).Return(true, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(updated, nil).Once()

		got, err := f.useCase(false).AddMember(ctx, groupID, userID)
		require.NoError(t, err)
		assert.True(t, got.HasMember(userID))
		f.groupRepo.AssertExpectations(t)
	})

	t.Run("UnknownGroupFoldsIntoSingleError", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("GetByID", ctx, groupID).Return(nil, groupDomain.ErrGroupNotFound)

		_, err := f.useCase(false).AddMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, groupDomain.ErrGroupOrUserNotFound)
		f.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("UnknownUserFoldsIntoSingleError", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil)
		f.userRepo.On("GetByID", ctx, userID).Return(nil, userDomain.ErrUserNotFound)

		_, err := f.useCase(false).AddMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, groupDomain.ErrGroupOrUserNotFound)
	})

	t.Run("AlreadyMemberLeavesStateUntouched", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.groupRepo.On("AddMember", ctx, groupID, userID).Return(false, nil).Once()

		_, err := f.useCase(false).AddMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, groupDomain.ErrAlreadyMember)
		f.groupRepo.AssertExpectations(t)
	})
}

func TestGroupUseCase_RemoveMember(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	group := &groupDomain.Group{ID: groupID, Name: "backend", Members: []uuid.UUID{userID}}
	user := &userDomain.User{ID: userID, Username: "alice"}

	t.Run("Success", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		updated := &groupDomain.Group{ID: groupID, Name: "backend"}

		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.groupRepo.On("RemoveMember", ctx, groupID, userID).Return(true, nil).Once()
		f.groupRepo.On("GetByID", ctx, groupID).Return(updated, nil).Once()

		got, err := f.useCase(false).RemoveMember(ctx, groupID, userID)
		require.NoError(t, err)
		assert.False(t, got.HasMember(userID))
	})

	t.Run("NotAMember", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("GetByID", ctx, groupID).Return(group, nil).Once()
		f.userRepo.On("GetByID", ctx, userID).Return(user, nil).Once()
		f.groupRepo.On("RemoveMember", ctx, groupID, userID).Return(false, nil).Once()

		_, err := f.useCase(false).RemoveMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, groupDomain.ErrNotAMember)
	})

	t.Run("UnknownGroupFoldsIntoSingleError", func(t *testing.T) {
		f := newGroupUseCaseFixture()
		f.groupRepo.On("GetByID", ctx, groupID).Return(nil, groupDomain.ErrGroupNotFound)

		_, err := f.useCase(false).RemoveMember(ctx, groupID, userID)
		assert.ErrorIs(t, err, groupDomain.ErrGroupOrUserNotFound)
	})
}

func TestGroupUseCase_Search(t *testing.T) {
	ctx := context.Background()
	f := newGroupUseCaseFixture()

	groups := []*groupDomain.Group{
		{ID: uuid.Must(uuid.NewV7()), Name: "backend"},
		{ID: uuid.Must(uuid.NewV7()), Name: "frontend"},
	}
	f.groupRepo.On("SearchByName", ctx, "end").Return(groups, nil)

	got, err := f.useCase(false).Search(ctx, "end")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
