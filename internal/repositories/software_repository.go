package repositories

import (
	"tasmeem_backend/internal/models"

	"gorm.io/gorm"
)

type SoftwareRepository interface {
	FindAll(db *gorm.DB) ([]models.DesignSoftware, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.DesignSoftware, error)
	Create(db *gorm.DB, software *models.DesignSoftware) error
	Count(db *gorm.DB) (int64, error)

	// designer <-> software links
	LinkDesigner(db *gorm.DB, designerID string, softwareIDs []string) error
	UnlinkDesigner(db *gorm.DB, designerID string) error
	FindByDesigner(db *gorm.DB, designerID string) ([]models.DesignerSoftware, error)
	// DesignerCategories returns the distinct catalog categories the designer
	// is linked to, the routing key of the pending queue.
	DesignerCategories(db *gorm.DB, designerID string) ([]string, error)
}

type SoftwareRepositoryImpl struct{}

func NewSoftwareRepository() SoftwareRepository {
	return &SoftwareRepositoryImpl{}
}

func (r *SoftwareRepositoryImpl) FindAll(db *gorm.DB) ([]models.DesignSoftware, error) {
	var software []models.DesignSoftware
	err := db.Order("category, name").Find(&software).Error
	return software, err
}

func (r *SoftwareRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.DesignSoftware, error) {
	var software []models.DesignSoftware
	if len(ids) == 0 {
		return software, nil
	}
	err := db.Where("id IN ?", ids).Find(&software).Error
	return software, err
}

func (r *SoftwareRepositoryImpl) Create(db *gorm.DB, software *models.DesignSoftware) error {
	return db.Create(software).Error
}

func (r *SoftwareRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.DesignSoftware{}).Count(&count).Error
	return count, err
}

func (r *SoftwareRepositoryImpl) LinkDesigner(db *gorm.DB, designerID string, softwareIDs []string) error {
	if len(softwareIDs) == 0 {
		return nil
	}

	links := make([]models.DesignerSoftware, 0, len(softwareIDs))
	for _, softwareID := range softwareIDs {
		links = append(links, models.DesignerSoftware{
			DesignerID: designerID,
			SoftwareID: softwareID,
		})
	}
	return db.Create(&links).Error
}

func (r *SoftwareRepositoryImpl) UnlinkDesigner(db *gorm.DB, designerID string) error {
	return db.Where("designer_id = ?", designerID).Delete(&models.DesignerSoftware{}).Error
}

func (r *SoftwareRepositoryImpl) FindByDesigner(db *gorm.DB, designerID string) ([]models.DesignerSoftware, error) {
	var links []models.DesignerSoftware
	err := db.Preload("Software").Where("designer_id = ?", designerID).Find(&links).Error
	return links, err
}

func (r *SoftwareRepositoryImpl) DesignerCategories(db *gorm.DB, designerID string) ([]string, error) {
	var categories []string
	err := db.Model(&models.DesignerSoftware{}).
		Joins("JOIN design_softwares ON design_softwares.id = designer_softwares.software_id").
		Where("designer_softwares.designer_id = ?", designerID).
		Distinct().
		Pluck("design_softwares.category", &categories).Error
	return categories, err
}
