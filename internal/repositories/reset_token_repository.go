package repositories

import (
	"errors"
	"time"

	"tasmeem_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("password reset token not found")

type ResetTokenRepository interface {
	Create(db *gorm.DB, token *models.PasswordResetToken) error
	// FindValid returns the token only when it is unused and unexpired.
	FindValid(db *gorm.DB, token string) (*models.PasswordResetToken, error)
	// Consume marks the token used. The used=false predicate makes the
	// consumption single-shot even under concurrent redemption attempts.
	Consume(db *gorm.DB, tokenID string) error
	DeleteExpired(db *gorm.DB) error
}

type ResetTokenRepositoryImpl struct{}

func NewResetTokenRepository() ResetTokenRepository {
	return &ResetTokenRepositoryImpl{}
}

func (r *ResetTokenRepositoryImpl) Create(db *gorm.DB, token *models.PasswordResetToken) error {
	return db.Create(token).Error
}

func (r *ResetTokenRepositoryImpl) FindValid(db *gorm.DB, token string) (*models.PasswordResetToken, error) {
	var reset models.PasswordResetToken
	err := db.Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &reset, nil
}

func (r *ResetTokenRepositoryImpl) Consume(db *gorm.DB, tokenID string) error {
	result := db.Model(&models.PasswordResetToken{}).
		Where("id = ? AND used = ?", tokenID, false).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetTokenNotFound
	}
	return nil
}

func (r *ResetTokenRepositoryImpl) DeleteExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.PasswordResetToken{}).Error
}
