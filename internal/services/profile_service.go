package services

import (
	"strings"

	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo     repositories.UserRepository
	softwareRepo repositories.SoftwareRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	softwareRepo repositories.SoftwareRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:     userRepo,
		softwareRepo: softwareRepo,
	}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ProfileResponse{User: user}
	if user.IsDesigner() {
		links, err := s.softwareRepo.FindByDesigner(db, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Software = links
	}
	return resp, nil
}

// UpdateProfile applies a partial update. The display name is re-derived
// from the updated fields so it never drifts from them.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
		updates["last_name"] = *req.LastName
	}
	if req.Username != nil {
		user.Username = *req.Username
		updates["username"] = *req.Username
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}

	if len(updates) > 0 {
		updates["name"] = derivedName(user)
		if err := s.userRepo.UpdateFields(db, user.ID, updates); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if user.IsDesigner() && req.SoftwareIDs != nil {
		if err := s.replaceSoftwareLinks(db, user.ID, *req.SoftwareIDs); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(db, user.ID)
}

func (s *ProfileServiceImpl) replaceSoftwareLinks(db *gorm.DB, designerID string, softwareIDs []string) error {
	if len(softwareIDs) > 0 {
		found, err := s.softwareRepo.FindByIDs(db, softwareIDs)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if len(found) != len(softwareIDs) {
			return apperrors.NewBadRequestError("Unknown software id")
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.softwareRepo.UnlinkDesigner(tx, designerID); err != nil {
			return apperrors.InternalError(err)
		}
		if len(softwareIDs) == 0 {
			return nil
		}
		if err := s.softwareRepo.LinkDesigner(tx, designerID, softwareIDs); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

func derivedName(user *models.User) string {
	if user.IsClient() {
		return strings.TrimSpace(user.FirstName + " " + user.LastName)
	}
	return user.Username
}
