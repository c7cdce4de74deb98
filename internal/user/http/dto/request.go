// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	userDomain "github.com/allisson/messaging/internal/user/domain"
	customValidation "github.com/allisson/messaging/internal/validation"
)

// CreateUserRequest represents the API request for account registration.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128),
		),
	)
}

// ToCreateUserInput converts the request into a use case input.
func (r *CreateUserRequest) ToCreateUserInput() userDomain.CreateUserInput {
	return userDomain.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
	}
}

// UpdateUserRequest represents the API request for a partial account update.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.NilOrNotEmpty.Error("username cannot be empty"),
		),
		validation.Field(&r.Password,
			validation.NilOrNotEmpty.Error("password cannot be empty"),
		),
	)
}

// ToUpdateUserInput converts the request into a use case input.
func (r *UpdateUserRequest) ToUpdateUserInput() userDomain.UpdateUserInput {
	return userDomain.UpdateUserInput{
		Username: r.Username,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
	}
}
