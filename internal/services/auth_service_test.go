package services

import (
	"strings"
	"testing"
	"time"

	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(provider *recordingEmailProvider) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewSoftwareRepository(),
		repositories.NewResetTokenRepository(),
		provider,
	)
}

func TestRegisterClient(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	user, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "sara@example.com",
		Password:  "secret123",
		UserType:  models.UserTypeClient,
		FirstName: "Sara",
		LastName:  "Ahmed",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Sara Ahmed", user.Name)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.Equal(t, models.UserTypeClient, user.UserType)
	assert.True(t, strings.HasPrefix(user.OpenID, "local-"))
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegisterDesignerLinksSoftware(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	figma := createTestSoftware(t, db, "Figma", "ui")
	blender := createTestSoftware(t, db, "Blender", "3d")

	user, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "nour@example.com",
		Password:    "secret123",
		UserType:    models.UserTypeDesigner,
		Username:    "nour_designs",
		SoftwareIDs: []string{figma.ID, blender.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "nour_designs", user.Name)

	links, err := repositories.NewSoftwareRepository().FindByDesigner(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	req := &dto.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "secret123",
		UserType:  models.UserTypeClient,
		FirstName: "A",
		LastName:  "B",
	}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	_, err = svc.Register(db, req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "login@example.com",
		Password:  "secret123",
		UserType:  models.UserTypeClient,
		FirstName: "Log",
		LastName:  "In",
	})
	require.NoError(t, err)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "login@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@example.com", resp.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "victim@example.com",
		Password:  "secret123",
		UserType:  models.UserTypeClient,
		FirstName: "V",
		LastName:  "W",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPass := svc.Login(db, &dto.LoginRequest{Email: "victim@example.com", Password: "wrong"})
	_, unknown := svc.Login(db, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	var appErr1, appErr2 *apperrors.AppError
	require.ErrorAs(t, wrongPass, &appErr1)
	require.ErrorAs(t, unknown, &appErr2)
	assert.Equal(t, appErr1.Message, appErr2.Message)
	assert.Equal(t, 401, appErr1.HTTPCode)
}

func TestPasswordResetFlow(t *testing.T) {
	db := setupTestDB(t)
	provider := &recordingEmailProvider{}
	svc := newAuthService(provider)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "reset@example.com",
		Password:  "oldpass123",
		UserType:  models.UserTypeClient,
		FirstName: "Re",
		LastName:  "Set",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(db, "reset@example.com"))
	require.Len(t, provider.tokens, 1)
	token := provider.tokens[0]

	require.NoError(t, svc.ResetPassword(db, token, "newpass123"))

	_, err = svc.Login(db, &dto.LoginRequest{Email: "reset@example.com", Password: "newpass123"})
	assert.NoError(t, err)
	_, err = svc.Login(db, &dto.LoginRequest{Email: "reset@example.com", Password: "oldpass123"})
	assert.Error(t, err)
}

func TestPasswordResetTokenSingleUse(t *testing.T) {
	db := setupTestDB(t)
	provider := &recordingEmailProvider{}
	svc := newAuthService(provider)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "once@example.com",
		Password:  "oldpass123",
		UserType:  models.UserTypeClient,
		FirstName: "On",
		LastName:  "Ce",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(db, "once@example.com"))
	token := provider.tokens[0]

	require.NoError(t, svc.ResetPassword(db, token, "newpass123"))

	err = svc.ResetPassword(db, token, "anotherpass1")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestPasswordResetExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	user := createTestClient(t, db, "expired@example.com")
	reset := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(reset).Error)

	err := svc.ResetPassword(db, "stale-token", "newpass123")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	provider := &recordingEmailProvider{}
	svc := newAuthService(provider)

	// Must succeed without sending anything.
	require.NoError(t, svc.RequestPasswordReset(db, "nobody@example.com"))
	assert.Empty(t, provider.tokens)

	var count int64
	require.NoError(t, db.Model(&models.PasswordResetToken{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	user, err := svc.Register(db, &dto.RegisterRequest{
		Email:     "change@example.com",
		Password:  "oldpass123",
		UserType:  models.UserTypeClient,
		FirstName: "Ch",
		LastName:  "Ange",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(db, user.ID, "wrongpass", "newpass123")
	assert.Error(t, err)

	require.NoError(t, svc.ChangePassword(db, user.ID, "oldpass123", "newpass123"))
	_, err = svc.Login(db, &dto.LoginRequest{Email: "change@example.com", Password: "newpass123"})
	assert.NoError(t, err)
}

func TestCurrentUserUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(&recordingEmailProvider{})

	_, err := svc.CurrentUser(db, "missing-id")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode)
}
