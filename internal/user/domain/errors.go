package domain

import (
	"github.com/allisson/messaging/internal/errors"
)

// User account errors.
var (
	// ErrUserNotFound indicates a user with the specified ID or username was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.Wrap(errors.ErrConflict, "username is already taken")
)
