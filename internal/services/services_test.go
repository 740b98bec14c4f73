package services

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"tasmeem_backend/internal/config"
	"tasmeem_backend/internal/database"
	"tasmeem_backend/internal/email"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 24
	config.AppConfig = cfg
	os.Exit(m.Run())
}

// setupTestDB opens a fresh in-memory database per test and migrates the
// full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

// recordingEmailProvider captures reset tokens instead of sending mail.
type recordingEmailProvider struct {
	to     []string
	tokens []string
}

func (p *recordingEmailProvider) Send(msg *email.Email) error { return nil }

func (p *recordingEmailProvider) SendPasswordReset(to string, token string) error {
	p.to = append(p.to, to)
	p.tokens = append(p.tokens, token)
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }

func createTestClient(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		OpenID:      "local-" + email,
		Name:        "Test Client",
		Email:       email,
		LoginMethod: "local",
		Role:        models.UserRoleUser,
		UserType:    models.UserTypeClient,
		FirstName:   "Test",
		LastName:    "Client",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestDesigner(t *testing.T, db *gorm.DB, email string, softwareIDs ...string) *models.User {
	t.Helper()
	user := &models.User{
		OpenID:      "local-" + email,
		Name:        "testdesigner",
		Email:       email,
		LoginMethod: "local",
		Role:        models.UserRoleUser,
		UserType:    models.UserTypeDesigner,
		Username:    "testdesigner",
	}
	require.NoError(t, db.Create(user).Error)

	if len(softwareIDs) > 0 {
		repo := repositories.NewSoftwareRepository()
		require.NoError(t, repo.LinkDesigner(db, user.ID, softwareIDs))
	}
	return user
}

func createTestAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		OpenID:      "local-" + email,
		Name:        "Administrator",
		Email:       email,
		LoginMethod: "local",
		Role:        models.UserRoleAdmin,
		UserType:    models.UserTypeClient,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestSoftware(t *testing.T, db *gorm.DB, name, category string) *models.DesignSoftware {
	t.Helper()
	software := &models.DesignSoftware{Name: name, NameAr: name, Category: category}
	require.NoError(t, db.Create(software).Error)
	return software
}

func createTestService(t *testing.T, db *gorm.DB, name, category string, price int) *models.Service {
	t.Helper()
	service := &models.Service{
		Name:     name,
		NameAr:   name,
		Price:    price,
		Category: category,
		IsActive: true,
	}
	require.NoError(t, db.Create(service).Error)
	return service
}
