package dto

import (
	"time"

	"github.com/google/uuid"

	userDomain "github.com/allisson/messaging/internal/user/domain"
)

// UserResponse represents the API view of an account.
// The password hash is never serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserEnvelope wraps a user payload with the operation outcome message.
type UserEnvelope struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// ToUserResponse converts a domain User model to a UserResponse DTO.
func ToUserResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
