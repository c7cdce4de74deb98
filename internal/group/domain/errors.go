package domain

import (
	"github.com/allisson/messaging/internal/errors"
)

// Group errors. The message text of the not-found and conflict errors is part
// of the public API contract and surfaces verbatim in responses.
var (
	// ErrGroupNotFound indicates a group with the specified ID was not found.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "Group not found")

	// ErrGroupOrUserNotFound folds the group and user lookups of a membership
	// change into one error so the response does not reveal which was absent.
	ErrGroupOrUserNotFound = errors.Wrap(errors.ErrNotFound, "Group or User not found")

	// ErrAlreadyMember indicates the user is already in the group.
	ErrAlreadyMember = errors.Wrap(errors.ErrConflict, "Group member already exists")

	// ErrNotAMember indicates the user is not in the group.
	ErrNotAMember = errors.Wrap(errors.ErrConflict, "User is not a member of this group")
)
