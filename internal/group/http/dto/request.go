// Package dto provides data transfer objects for the group HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/messaging/internal/validation"
)

// CreateGroupRequest contains the parameters for creating a new group.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create group request is valid.
func (r *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// MemberRequest carries the user targeted by a membership change.
// The group comes from the URL path.
type MemberRequest struct {
	UserID string `json:"userId"`
}

// Validate checks if the member request is valid.
func (r *MemberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Required.Error("userId is required"),
			customValidation.NotBlank,
		),
	)
}
