package services

import (
	"testing"

	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogTestService() CatalogService {
	return NewCatalogService(
		repositories.NewUserRepository(),
		repositories.NewSoftwareRepository(),
		repositories.NewServiceRepository(),
	)
}

func TestListServicesActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogTestService()

	createTestService(t, db, "Logo Design", "photo", 50000)
	inactive := createTestService(t, db, "Retired Service", "photo", 10000)
	require.NoError(t, db.Model(&models.Service{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	services, err := svc.ListServices(db)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Logo Design", services[0].Name)

	// Fetching a retired service by id still resolves; only listings filter.
	got, err := svc.GetService(db, inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svc.GetService(db, "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListDesignersIncludesSoftware(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogTestService()

	figma := createTestSoftware(t, db, "Figma", "ui")
	designer := createTestDesigner(t, db, "designer@example.com", figma.ID)
	createTestClient(t, db, "client@example.com")

	designers, err := svc.ListDesigners(db)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	assert.Equal(t, designer.ID, designers[0].User.ID)
	require.Len(t, designers[0].Software, 1)
	assert.Equal(t, figma.ID, designers[0].Software[0].SoftwareID)
}

func TestGetDesignerRejectsNonDesigners(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogTestService()

	client := createTestClient(t, db, "client@example.com")

	_, err := svc.GetDesigner(db, client.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}
