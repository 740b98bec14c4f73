package repositories

import (
	"errors"

	"tasmeem_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type PaymentRepository interface {
	FindByClient(db *gorm.DB, clientID string) ([]models.PaymentMethod, error)
	FindByID(db *gorm.DB, id string) (*models.PaymentMethod, error)
	Create(db *gorm.DB, method *models.PaymentMethod) error
	SetDefault(db *gorm.DB, clientID, methodID string, isDefault bool) error
	Delete(db *gorm.DB, id string) error
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) FindByClient(db *gorm.DB, clientID string) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := db.Where("client_id = ?", clientID).Order("created_at").Find(&methods).Error
	return methods, err
}

func (r *PaymentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := db.First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, err
	}
	return &method, nil
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, method *models.PaymentMethod) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if method.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("client_id = ?", method.ClientID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(method).Error
	})
}

// SetDefault flips the default flag; at most one card per client stays default.
func (r *PaymentRepositoryImpl) SetDefault(db *gorm.DB, clientID, methodID string, isDefault bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if isDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("client_id = ?", clientID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&models.PaymentMethod{}).
			Where("id = ? AND client_id = ?", methodID, clientID).
			Update("is_default", isDefault)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPaymentMethodNotFound
		}
		return nil
	})
}

func (r *PaymentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.PaymentMethod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentMethodNotFound
	}
	return nil
}
