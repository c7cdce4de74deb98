// Package usecase defines the interfaces and implementations for authentication use cases.
// Use cases orchestrate token issuance, revocation and verification between the
// credential services and the revocation store.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// RevokedTokenRepository defines the interface for revoked token persistence operations.
type RevokedTokenRepository interface {
	Create(ctx context.Context, revokedToken *authDomain.RevokedToken) error
	Exists(ctx context.Context, tokenHash string) (bool, error)
	PurgeIssuedBefore(ctx context.Context, threshold time.Time) (int64, error)
	CountIssuedBefore(ctx context.Context, threshold time.Time) (int64, error)
}

// UserRepository gives the authentication context read access to user accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// AuthUseCase defines the interface for the session token lifecycle.
type AuthUseCase interface {
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, username string, password string) (string, error)
	// Logout revokes a session token so it is rejected until it expires.
	Logout(ctx context.Context, token string) error
	// Authenticate checks a token against the revocation store and its
	// signature, returning the identity it was issued for.
	Authenticate(ctx context.Context, token string) (*authDomain.Identity, error)
	// PurgeExpired removes revocation records whose tokens have already
	// expired and returns the number of deleted records.
	PurgeExpired(ctx context.Context) (int64, error)
	// CountExpired reports how many records PurgeExpired would remove.
	CountExpired(ctx context.Context) (int64, error)
}
