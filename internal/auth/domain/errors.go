package domain

import (
	"github.com/allisson/messaging/internal/errors"
)

// Authentication errors. The token verification failures all fold into the
// unauthorized class on the HTTP surface; the distinct values exist so logs
// and metrics can tell them apart.
var (
	// ErrInvalidCredentials indicates the username or password did not match.
	// Deliberately identical for unknown users and wrong passwords.
	ErrInvalidCredentials = errors.Wrap(errors.ErrInvalidInput, "invalid credentials")

	// ErrTokenMalformed indicates the token could not be parsed.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "token is malformed")

	// ErrTokenSignature indicates the token signature did not verify.
	ErrTokenSignature = errors.Wrap(errors.ErrUnauthorized, "token signature is invalid")

	// ErrTokenExpired indicates the token's lifetime has elapsed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token is expired")

	// ErrTokenRevoked indicates the token was invalidated by logout before
	// its natural expiry.
	ErrTokenRevoked = errors.Wrap(errors.ErrUnauthorized, "token is revoked")
)
