package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMessage_LikedBy(t *testing.T) {
	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())

	message := &Message{
		ID:    uuid.Must(uuid.NewV7()),
		Likes: []uuid.UUID{alice},
	}

	assert.True(t, message.LikedBy(alice))
	assert.False(t, message.LikedBy(bob))

	empty := &Message{ID: uuid.Must(uuid.NewV7())}
	assert.False(t, empty.LikedBy(alice))
}
