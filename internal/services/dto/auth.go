package dto

import "tasmeem_backend/internal/models"

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	UserType models.UserType `json:"user_type" validate:"required,oneof=client designer"`

	// Client fields
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=100"`

	// Designer fields
	Username    string   `json:"username,omitempty" validate:"omitempty,max=100"`
	SoftwareIDs []string `json:"software_ids,omitempty" validate:"-"`

	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token. The handler additionally sets it
// as a cookie; the body copy is the fallback transport.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
