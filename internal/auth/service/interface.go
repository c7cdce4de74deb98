// Package service provides technical services for session credentials.
//
// This package implements the signed token codec, password hashing, and the
// clock capability used to make token lifetimes testable.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
)

// TokenService defines the session token codec. Implementations sign and
// verify self-contained tokens carrying the subject identity and privilege
// flag, with a fixed lifetime bound into the expiry claim.
type TokenService interface {
	// Issue produces a signed token for the subject with
	// expiresAt = issuedAt + lifetime.
	Issue(userID uuid.UUID, isAdmin bool) (string, error)

	// Verify checks the token's shape, signature, and expiry, and returns the
	// embedded claims. Failures are ErrTokenMalformed, ErrTokenSignature, or
	// ErrTokenExpired; all of them fold into the unauthorized class.
	Verify(token string) (*authDomain.Claims, error)

	// DecodeIssuedAt extracts the issue time WITHOUT verifying the signature.
	// Only the logout path uses this: the revocation record needs the issue
	// time, and enforcement happens later at the authentication gate.
	// The returned error carries no HTTP classification.
	DecodeIssuedAt(token string) (time.Time, error)

	// Hash returns the SHA-256 hex digest used to key revocation records, so
	// the raw token value never reaches the store.
	Hash(token string) string
}

// PasswordService defines one-way password hashing and verification.
// Implementations must use a memory-hard algorithm (e.g., argon2id).
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (string, error)

	// Compare compares a plain text password against a stored hash.
	// Returns true on match. This is constant-time to prevent timing attacks.
	Compare(plainPassword string, hashedPassword string) bool
}

// Clock provides the current time. Injected so token issuance, verification,
// and the revocation sweeper can be driven by a fake clock in tests.
type Clock interface {
	Now() time.Time
}
