// Package domain defines the user account domain models.
//
// Accounts carry a unique username, an Argon2id password hash and an admin
// flag that authorization policies consult.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Username  string    // Unique login name
	Password  string    // Argon2id password hash (never plaintext)
	IsAdmin   bool      // Whether the account holds the admin role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput carries the fields needed to register an account.
type CreateUserInput struct {
	Username string
	Password string
	IsAdmin  bool
}

// UpdateUserInput carries a partial account update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Username *string
	Password *string
	IsAdmin  *bool
}
