package usecase

import (
	"context"

	"github.com/google/uuid"

	authService "github.com/allisson/messaging/internal/auth/service"
	apperrors "github.com/allisson/messaging/internal/errors"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
	clock           authService.Clock
}

// Create registers a new account with a hashed password.
func (u *userUseCase) Create(ctx context.Context, input userDomain.CreateUserInput) (*userDomain.User, error) {
	hashedPassword, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	now := u.clock.Now().UTC()
	user := &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Username:  input.Username,
		Password:  hashedPassword,
		IsAdmin:   input.IsAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies a partial account update. A new password is rehashed before
// it is stored.
func (u *userUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashedPassword, err := u.passwordService.Hash(*input.Password)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = hashedPassword
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	user.UpdatedAt = u.clock.Now().UTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// NewUserUseCase creates a new UserUseCase instance.
func NewUserUseCase(
	userRepo UserRepository,
	passwordService authService.PasswordService,
	clock authService.Clock,
) UserUseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		clock:           clock,
	}
}
