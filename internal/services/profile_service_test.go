package services

import (
	"testing"

	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileTestService() ProfileService {
	return NewProfileService(
		repositories.NewUserRepository(),
		repositories.NewSoftwareRepository(),
	)
}

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newProfileTestService()
	client := createTestClient(t, db, "client@example.com")

	// Only the first name changes; the rest stays put and the display name
	// follows.
	profile, err := svc.UpdateProfile(db, client.ID, &dto.UpdateProfileRequest{
		FirstName: strPtr("Sara"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sara", profile.User.FirstName)
	assert.Equal(t, "Client", profile.User.LastName)
	assert.Equal(t, "Sara Client", profile.User.Name)

	// A pointer to empty string clears the column.
	profile, err = svc.UpdateProfile(db, client.ID, &dto.UpdateProfileRequest{
		LastName: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", profile.User.LastName)
	assert.Equal(t, "Sara", profile.User.Name)
}

func TestUpdateProfileReplacesDesignerSoftware(t *testing.T) {
	db := setupTestDB(t)
	svc := newProfileTestService()

	figma := createTestSoftware(t, db, "Figma", "ui")
	blender := createTestSoftware(t, db, "Blender", "3d")
	designer := createTestDesigner(t, db, "designer@example.com", figma.ID)

	profile, err := svc.UpdateProfile(db, designer.ID, &dto.UpdateProfileRequest{
		SoftwareIDs: &[]string{blender.ID},
	})
	require.NoError(t, err)
	require.Len(t, profile.Software, 1)
	assert.Equal(t, blender.ID, profile.Software[0].SoftwareID)

	// Unknown software ids are rejected before the old links are touched.
	_, err = svc.UpdateProfile(db, designer.ID, &dto.UpdateProfileRequest{
		SoftwareIDs: &[]string{"no-such-software"},
	})
	assert.Error(t, err)

	current, err := svc.GetProfile(db, designer.ID)
	require.NoError(t, err)
	require.Len(t, current.Software, 1)
	assert.Equal(t, blender.ID, current.Software[0].SoftwareID)

	// An empty list clears the links.
	profile, err = svc.UpdateProfile(db, designer.ID, &dto.UpdateProfileRequest{
		SoftwareIDs: &[]string{},
	})
	require.NoError(t, err)
	assert.Empty(t, profile.Software)
}

func TestUpdateProfileDesignerNameFollowsUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newProfileTestService()
	designer := createTestDesigner(t, db, "designer@example.com")

	profile, err := svc.UpdateProfile(db, designer.ID, &dto.UpdateProfileRequest{
		Username: strPtr("pixel_nour"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pixel_nour", profile.User.Name)
}
