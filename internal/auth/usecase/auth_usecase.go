package usecase

import (
	"context"
	"fmt"
	"time"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	authService "github.com/allisson/messaging/internal/auth/service"
	apperrors "github.com/allisson/messaging/internal/errors"
)

// authUseCase implements the AuthUseCase interface.
type authUseCase struct {
	revokedTokenRepo RevokedTokenRepository
	userRepo         UserRepository
	tokenService     authService.TokenService
	passwordService  authService.PasswordService
	clock            authService.Clock
	tokenLifetime    time.Duration
}

// Login verifies the credentials and returns a signed session token.
// An unknown username and a wrong password produce the same error so the
// response does not reveal which part failed.
func (a *authUseCase) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", authDomain.ErrInvalidCredentials
		}
		return "", err
	}

	if !a.passwordService.Compare(password, user.Password) {
		return "", authDomain.ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to issue session token")
	}

	return token, nil
}

// Logout revokes a session token. The token only needs to be decodable,
// not valid: an already expired token can still be revoked.
func (a *authUseCase) Logout(ctx context.Context, token string) error {
	issuedAt, err := a.tokenService.DecodeIssuedAt(token)
	if err != nil {
		return fmt.Errorf("failed to decode session token: %w", err)
	}

	revokedToken := &authDomain.RevokedToken{
		TokenHash: a.tokenService.Hash(token),
		IssuedAt:  issuedAt.UTC(),
		CreatedAt: a.clock.Now().UTC(),
	}

	return a.revokedTokenRepo.Create(ctx, revokedToken)
}

// Authenticate resolves a session token into the identity it was issued for.
// The revocation store is consulted before the signature check, and a store
// failure never lets a token through.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	revoked, err := a.revokedTokenRepo.Exists(ctx, a.tokenService.Hash(token))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnavailable, "failed to check token revocation")
	}
	if revoked {
		return nil, authDomain.ErrTokenRevoked
	}

	claims, err := a.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	return &authDomain.Identity{
		UserID:  claims.UserID,
		IsAdmin: claims.IsAdmin,
	}, nil
}

// PurgeExpired removes revocation records for tokens that have outlived the
// token lifetime. Once a token is expired the signature check alone rejects
// it, so its revocation record is dead weight.
func (a *authUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	threshold := a.clock.Now().UTC().Add(-a.tokenLifetime)
	return a.revokedTokenRepo.PurgeIssuedBefore(ctx, threshold)
}

// CountExpired reports how many revocation records PurgeExpired would remove.
func (a *authUseCase) CountExpired(ctx context.Context) (int64, error) {
	threshold := a.clock.Now().UTC().Add(-a.tokenLifetime)
	return a.revokedTokenRepo.CountIssuedBefore(ctx, threshold)
}

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(
	revokedTokenRepo RevokedTokenRepository,
	userRepo UserRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
	clock authService.Clock,
	tokenLifetime time.Duration,
) AuthUseCase {
	return &authUseCase{
		revokedTokenRepo: revokedTokenRepo,
		userRepo:         userRepo,
		tokenService:     tokenService,
		passwordService:  passwordService,
		clock:            clock,
		tokenLifetime:    tokenLifetime,
	}
}
