// Package dto provides data transfer objects for the message HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/messaging/internal/validation"
)

// SendMessageRequest contains the text for a new message. The target group
// comes from the URL path and the sender from the authenticated identity.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// Validate checks if the send message request is valid.
func (r *SendMessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			customValidation.NotBlank,
			validation.Length(1, 4096),
		),
	)
}

// LikeMessageRequest carries the message targeted by a like toggle.
type LikeMessageRequest struct {
	MessageID string `json:"messageId"`
}

// Validate checks if the like message request is valid.
func (r *LikeMessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.MessageID,
			validation.Required.Error("messageId is required"),
			customValidation.NotBlank,
		),
	)
}
