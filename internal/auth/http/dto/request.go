// Package dto provides data transfer objects for authentication HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/messaging/internal/validation"
)

// LoginRequest contains the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 255),
		),
	)
}

// LogoutRequest contains the session token to revoke.
// The token is carried in the body, not the Authorization header.
type LogoutRequest struct {
	Token string `json:"token"`
}
