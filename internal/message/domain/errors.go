package domain

import (
	"github.com/allisson/messaging/internal/errors"
)

// Message errors. The message text of the not-found and forbidden errors is
// part of the public API contract and surfaces verbatim in responses.
var (
	// ErrMessageNotFound indicates a message with the specified ID was not found.
	ErrMessageNotFound = errors.Wrap(errors.ErrNotFound, "Message not found")

	// ErrDeleteForbidden indicates the requester is neither the sender of the
	// message nor an administrator.
	ErrDeleteForbidden = errors.Wrap(errors.ErrForbidden, "You don't have permission to delete this message.")
)
