package auth

import (
	"os"
	"testing"

	"tasmeem_backend/internal/config"
	"tasmeem_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 24
	config.AppConfig = cfg
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		Role:     models.UserRoleUser,
		UserType: models.UserTypeDesigner,
	}
	user.ID = "user-123"

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)
	assert.Equal(t, models.UserTypeDesigner, claims.UserType)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}
