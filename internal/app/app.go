package app

import (
	"database/sql"
	"errors"
	"fmt"

	"tasmeem_backend/internal/config"
	"tasmeem_backend/internal/database"
	"tasmeem_backend/internal/email"
	"tasmeem_backend/internal/handlers"
	"tasmeem_backend/internal/logger"
	"tasmeem_backend/internal/middleware"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/routes"
	"tasmeem_backend/internal/services"
	"tasmeem_backend/internal/storage"
	"tasmeem_backend/internal/validator"
	"tasmeem_backend/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.SeedCatalog(gormDB); err != nil {
		logger.Fatal("Failed to seed catalog", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(cfg, storageInstance, wsManager)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, notifier services.MessageNotifier) *services.ServiceContainer {
	emailProvider := newEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	resetTokenRepo := repositories.NewResetTokenRepository()
	softwareRepo := repositories.NewSoftwareRepository()
	serviceRepo := repositories.NewServiceRepository()
	orderRepo := repositories.NewOrderRepository()
	messageRepo := repositories.NewMessageRepository()
	paymentRepo := repositories.NewPaymentRepository()

	return &services.ServiceContainer{
		Auth:    services.NewAuthService(userRepo, softwareRepo, resetTokenRepo, emailProvider),
		Profile: services.NewProfileService(userRepo, softwareRepo),
		Catalog: services.NewCatalogService(userRepo, softwareRepo, serviceRepo),
		Order:   services.NewOrderService(userRepo, orderRepo, serviceRepo, softwareRepo, messageRepo, storageInstance, cfg.Upload.MaxSize),
		Message: services.NewMessageService(userRepo, orderRepo, messageRepo, notifier),
		Payment: services.NewPaymentService(paymentRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.Auth),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, container.Profile),
		CatalogHandler: handlers.NewCatalogHandler(baseHandler, container.Catalog),
		OrderHandler:   handlers.NewOrderHandler(baseHandler, container.Order),
		MessageHandler: handlers.NewMessageHandler(baseHandler, container.Message),
		PaymentHandler: handlers.NewPaymentHandler(baseHandler, container.Payment),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// newEmailProvider picks SMTP when a host is configured, otherwise falls
// back to the mock used in local development.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured. Using mock email provider.")
		return &MockEmailProvider{}
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

// seedFirstAdmin bootstraps the platform administrator from the environment.
// A missing configuration just skips the step.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		OpenID:       "local-admin",
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		LoginMethod:  "local",
		Role:         models.UserRoleAdmin,
		UserType:     models.UserTypeClient,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
