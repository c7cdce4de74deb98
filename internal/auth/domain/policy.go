package domain

import "github.com/google/uuid"

// AdminOnly reports whether the identity may perform administrator-only
// actions (user management, member removal).
func AdminOnly(identity *Identity) bool {
	if identity == nil {
		return false
	}
	return identity.IsAdmin
}

// OwnerOrAdmin reports whether the identity may act on a resource owned by
// ownerID. Administrators may act on any resource.
func OwnerOrAdmin(identity *Identity, ownerID uuid.UUID) bool {
	if identity == nil {
		return false
	}
	return identity.IsAdmin || identity.UserID == ownerID
}
