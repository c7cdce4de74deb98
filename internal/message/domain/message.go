// Package domain contains the core message entities and business rules.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a text message posted to a group.
type Message struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	GroupID   uuid.UUID   `json:"group_id" db:"group_id"`
	SenderID  uuid.UUID   `json:"sender_id" db:"sender_id"`
	Text      string      `json:"text" db:"text"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// LikedBy reports whether the given user has liked this message.
func (m *Message) LikedBy(userID uuid.UUID) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
