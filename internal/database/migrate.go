package database

import (
	"fmt"

	"tasmeem_backend/internal/config"
	"tasmeem_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the connection pool configured by database.url.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.DesignSoftware{},
		&models.DesignerSoftware{},
		&models.Service{},
		&models.Order{},
		&models.OrderFile{},
		&models.Deliverable{},
		&models.Message{},
		&models.PaymentMethod{},
	)
}
