package repositories

import (
	"errors"

	"tasmeem_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	FindActive(db *gorm.DB) ([]models.Service, error)
	FindByID(db *gorm.DB, id string) (*models.Service, error)
	FindActiveByCategories(db *gorm.DB, categories []string) ([]models.Service, error)
	Create(db *gorm.DB, service *models.Service) error
	UpdatePrice(db *gorm.DB, id string, price int) error
	Count(db *gorm.DB) (int64, error)
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) FindActive(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("is_active = ?", true).Order("category, name").Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Service, error) {
	var service models.Service
	err := db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindActiveByCategories(db *gorm.DB, categories []string) ([]models.Service, error) {
	var services []models.Service
	if len(categories) == 0 {
		return services, nil
	}
	err := db.Where("is_active = ? AND category IN ?", true, categories).Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

// UpdatePrice edits the catalog price. Orders keep the price they snapshotted
// at creation; this never cascades.
func (r *ServiceRepositoryImpl) UpdatePrice(db *gorm.DB, id string, price int) error {
	result := db.Model(&models.Service{}).Where("id = ?", id).Update("price", price)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
