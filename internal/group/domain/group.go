// Package domain defines the group domain models.
//
// A group is a named chat room; membership lives in its own relation keyed
// unique per (group, user) so concurrent membership changes cannot produce
// duplicates.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a chat group and its current member list.
type Group struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Name      string
	Members   []uuid.UUID // User IDs, ordered by join time
	CreatedAt time.Time
}

// HasMember reports whether the user is currently in the member list.
// Comparison is by identifier equality.
func (g *Group) HasMember(userID uuid.UUID) bool {
	for _, member := range g.Members {
		if member == userID {
			return true
		}
	}
	return false
}
