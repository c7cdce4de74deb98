package dto

import (
	"time"

	"github.com/google/uuid"

	messageDomain "github.com/allisson/messaging/internal/message/domain"
)

// MessageResponse represents the API view of a message.
type MessageResponse struct {
	ID        uuid.UUID   `json:"id"`
	GroupID   uuid.UUID   `json:"group_id"`
	SenderID  uuid.UUID   `json:"sender_id"`
	Text      string      `json:"text"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
}

// MessageEnvelope wraps a message payload with the operation outcome message.
type MessageEnvelope struct {
	MessageDetails MessageResponse `json:"messageDetails"`
	Message        string          `json:"message"`
}

// MessageListEnvelope wraps a message list with the operation outcome message.
type MessageListEnvelope struct {
	Messages []MessageResponse `json:"messages"`
	Message  string            `json:"message"`
}

// StatusEnvelope carries an outcome message with no payload.
type StatusEnvelope struct {
	Message string `json:"message"`
}

// ToMessageResponse converts a domain Message model to a MessageResponse DTO.
func ToMessageResponse(message *messageDomain.Message) MessageResponse {
	likes := message.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}
	return MessageResponse{
		ID:        message.ID,
		GroupID:   message.GroupID,
		SenderID:  message.SenderID,
		Text:      message.Text,
		Likes:     likes,
		CreatedAt: message.CreatedAt,
	}
}

// ToMessageListResponse converts a list of domain Messages to response DTOs.
func ToMessageListResponse(messages []*messageDomain.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, ToMessageResponse(message))
	}
	return responses
}
