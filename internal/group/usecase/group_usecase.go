package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	authService "github.com/allisson/messaging/internal/auth/service"
	"github.com/allisson/messaging/internal/database"
	apperrors "github.com/allisson/messaging/internal/errors"
	groupDomain "github.com/allisson/messaging/internal/group/domain"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// groupUseCase implements the GroupUseCase interface.
type groupUseCase struct {
	txManager       database.TxManager
	groupRepo       GroupRepository
	userRepo        UserRepository
	messageRepo     MessageRepository
	clock           authService.Clock
	cascadeMessages bool
	logger          *slog.Logger
}

// Create creates a new group with an empty member list.
func (g *groupUseCase) Create(ctx context.Context, name string) (*groupDomain.Group, error) {
	group := &groupDomain.Group{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		CreatedAt: g.clock.Now().UTC(),
	}

	if err := g.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// Delete removes a group and its memberships. When the cascade is enabled
// the group's messages go with it, atomically; otherwise they are left in
// place as orphans.
func (g *groupUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return g.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if g.cascadeMessages {
			deleted, err := g.messageRepo.DeleteByGroup(txCtx, id)
			if err != nil {
				return err
			}
			if g.logger != nil && deleted > 0 {
				g.logger.Info("cascade deleted group messages",
					slog.String("group_id", id.String()),
					slog.Int64("count", deleted))
			}
		}
		return g.groupRepo.Delete(txCtx, id)
	})
}

// AddMember adds a user to a group. The group and user lookups fold into a
// single not-found error so the response does not reveal which was absent.
func (g *groupUseCase) AddMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error) {
	if err := g.checkGroupAndUser(ctx, groupID, userID); err != nil {
		return nil, err
	}

	inserted, err := g.groupRepo.AddMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, groupDomain.ErrAlreadyMember
	}

	return g.groupRepo.GetByID(ctx, groupID)
}

// RemoveMember removes a user from a group.
func (g *groupUseCase) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) (*groupDomain.Group, error) {
	if err := g.checkGroupAndUser(ctx, groupID, userID); err != nil {
		return nil, err
	}

	removed, err := g.groupRepo.RemoveMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, groupDomain.ErrNotAMember
	}

	return g.groupRepo.GetByID(ctx, groupID)
}

// Search retrieves groups by case-insensitive name fragment. An empty
// fragment matches every group.
func (g *groupUseCase) Search(ctx context.Context, name string) ([]*groupDomain.Group, error) {
	return g.groupRepo.SearchByName(ctx, name)
}

// checkGroupAndUser verifies both sides of a membership change exist.
func (g *groupUseCase) checkGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := g.groupRepo.GetByID(ctx, groupID); err != nil {
		if apperrors.Is(err, groupDomain.ErrGroupNotFound) {
			return groupDomain.ErrGroupOrUserNotFound
		}
		return err
	}
	if _, err := g.userRepo.GetByID(ctx, userID); err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return groupDomain.ErrGroupOrUserNotFound
		}
		return err
	}
	return nil
}

// NewGroupUseCase creates a new GroupUseCase instance.
func NewGroupUseCase(
	txManager database.TxManager,
	groupRepo GroupRepository,
	userRepo UserRepository,
	messageRepo MessageRepository,
	clock authService.Clock,
	cascadeMessages bool,
	logger *slog.Logger,
) GroupUseCase {
	return &groupUseCase{
		txManager:       txManager,
		groupRepo:       groupRepo,
		userRepo:        userRepo,
		messageRepo:     messageRepo,
		clock:           clock,
		cascadeMessages: cascadeMessages,
		logger:          logger,
	}
}
