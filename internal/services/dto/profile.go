package dto

import "tasmeem_backend/internal/models"

// UpdateProfileRequest is an explicit partial update: nil pointer means
// "leave unchanged", a pointer to "" clears the column.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Username    *string `json:"username,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`

	// Designer software links are replaced wholesale when present.
	SoftwareIDs *[]string `json:"software_ids,omitempty" validate:"-"`
}

type ProfileResponse struct {
	User     *models.User              `json:"user"`
	Software []models.DesignerSoftware `json:"software,omitempty"`
}

type DesignerResponse struct {
	User     *models.User              `json:"user"`
	Software []models.DesignerSoftware `json:"software"`
}
