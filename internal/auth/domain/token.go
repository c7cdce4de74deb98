// Package domain defines the session credential and authorization domain models.
// A credential is a signed, self-contained token; revocation is tracked in a
// separate durable store so a still-valid token can be invalidated early.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claims holds the verified content of a session token. It is never persisted;
// it is reconstructed from the token on every successful verification.
type Claims struct {
	UserID    uuid.UUID
	IsAdmin   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RevokedToken marks a token as no longer honored, independent of its
// signature or expiry. Records become redundant once the token's natural
// lifetime has elapsed and are purged by the sweeper.
type RevokedToken struct {
	// TokenHash is the SHA-256 hex digest of the raw token value. The raw
	// value is never stored.
	TokenHash string
	// IssuedAt is the token's issue time, used by the sweeper to decide
	// when the record stops being load-bearing.
	IssuedAt  time.Time
	CreatedAt time.Time
}

// Identity is the request-scoped result of a successful authentication.
// It carries only what authorization decisions need.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}
