package services

import (
	"tasmeem_backend/internal/logger"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListSoftware(db *gorm.DB) ([]models.DesignSoftware, error)
	ListServices(db *gorm.DB) ([]models.Service, error)
	GetService(db *gorm.DB, serviceID string) (*models.Service, error)
	ListDesigners(db *gorm.DB) ([]dto.DesignerResponse, error)
	GetDesigner(db *gorm.DB, designerID string) (*dto.DesignerResponse, error)
}

type CatalogServiceImpl struct {
	userRepo     repositories.UserRepository
	softwareRepo repositories.SoftwareRepository
	serviceRepo  repositories.ServiceRepository
}

func NewCatalogService(
	userRepo repositories.UserRepository,
	softwareRepo repositories.SoftwareRepository,
	serviceRepo repositories.ServiceRepository,
) CatalogService {
	return &CatalogServiceImpl{
		userRepo:     userRepo,
		softwareRepo: softwareRepo,
		serviceRepo:  serviceRepo,
	}
}

// ListSoftware serves the public software catalog. Read failures degrade to
// an empty list so browsing pages stay up when the store is unavailable.
func (s *CatalogServiceImpl) ListSoftware(db *gorm.DB) ([]models.DesignSoftware, error) {
	software, err := s.softwareRepo.FindAll(db)
	if err != nil {
		logger.Warn("Software catalog read failed, serving empty list", "error", err)
		return []models.DesignSoftware{}, nil
	}
	return software, nil
}

// ListServices returns active services only.
func (s *CatalogServiceImpl) ListServices(db *gorm.DB) ([]models.Service, error) {
	services, err := s.serviceRepo.FindActive(db)
	if err != nil {
		logger.Warn("Service catalog read failed, serving empty list", "error", err)
		return []models.Service{}, nil
	}
	return services, nil
}

func (s *CatalogServiceImpl) GetService(db *gorm.DB, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

// ListDesigners returns every designer together with the software they work in.
func (s *CatalogServiceImpl) ListDesigners(db *gorm.DB) ([]dto.DesignerResponse, error) {
	designers, err := s.userRepo.FindDesigners(db)
	if err != nil {
		logger.Warn("Designer listing read failed, serving empty list", "error", err)
		return []dto.DesignerResponse{}, nil
	}

	responses := make([]dto.DesignerResponse, 0, len(designers))
	for i := range designers {
		resp, err := s.designerResponse(db, &designers[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *CatalogServiceImpl) GetDesigner(db *gorm.DB, designerID string) (*dto.DesignerResponse, error) {
	user, err := s.userRepo.FindByID(db, designerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "catalog", "Designer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsDesigner() {
		return nil, apperrors.ErrNotFound(nil, "catalog", "Designer not found")
	}
	return s.designerResponse(db, user)
}

func (s *CatalogServiceImpl) designerResponse(db *gorm.DB, user *models.User) (*dto.DesignerResponse, error) {
	links, err := s.softwareRepo.FindByDesigner(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.DesignerResponse{User: user, Software: links}, nil
}
