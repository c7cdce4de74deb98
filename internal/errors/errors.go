// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate membership).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a transient infrastructure failure (store error
	// or deadline expiry) that is safe to retry. Kept distinct from policy
	// denials so callers never mistake an outage for a rejection.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap attaches a message to an error while preserving the error chain.
// Error() returns the message alone, without the wrapped error's text, so
// messages that surface in API responses stay clean. The wrapped error is
// still reachable through errors.Is and errors.As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{message: message, err: err}
}

type wrappedError struct {
	message string
	err     error
}

func (w *wrappedError) Error() string {
	return w.message
}

func (w *wrappedError) Unwrap() error {
	return w.err
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
