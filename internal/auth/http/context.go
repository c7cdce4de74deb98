// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
)

// identityKey is a context key type for storing authenticated identities.
type identityKey struct{}

// WithIdentity stores an authenticated identity in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves an authenticated identity from the context.
// Returns (identity, true) if an identity is present, or (nil, false) if none was set.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}
