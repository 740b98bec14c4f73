package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"tasmeem_backend/internal/auth"
	"tasmeem_backend/internal/email"
	"tasmeem_backend/internal/logger"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/repositories"
	"tasmeem_backend/internal/services/dto"
	"tasmeem_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resetTokenTTL bounds how long a password-reset token stays redeemable.
const resetTokenTTL = time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
	CurrentUser(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	softwareRepo   repositories.SoftwareRepository
	resetTokenRepo repositories.ResetTokenRepository
	emailProvider  email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	softwareRepo repositories.SoftwareRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		softwareRepo:   softwareRepo,
		resetTokenRepo: resetTokenRepo,
		emailProvider:  emailProvider,
	}
}

// Register creates a client or designer account. The user type is fixed at
// this point and never changes afterwards.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if req.UserType != models.UserTypeClient && req.UserType != models.UserTypeDesigner {
		return nil, apperrors.ErrInvalidUserType
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		OpenID:       "local-" + uuid.NewString(),
		Name:         displayName(req.UserType, req.FirstName, req.LastName, req.Username),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		LoginMethod:  "local",
		Role:         models.UserRoleUser,
		UserType:     req.UserType,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PhoneNumber:  req.PhoneNumber,
		LastSignedIn: time.Now(),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsDesigner() && len(req.SoftwareIDs) > 0 {
		if err := s.softwareRepo.LinkDesigner(db, user.ID, req.SoftwareIDs); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastSignedIn(db, user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// RequestPasswordReset never reveals whether the email is registered.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := generateResetToken()
	reset := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetTokenRepo.Create(db, reset); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, token); err != nil {
		// The token is already persisted; a delivery failure should not leak
		// account existence through the response.
		logger.Warn("Failed to send password reset email", "error", err)
	}

	return nil
}

// ResetPassword redeems a reset token exactly once.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	reset, err := s.resetTokenRepo.FindValid(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	// Consume before changing the credential; the used=false predicate makes
	// a concurrent second redemption lose here.
	if err := s.resetTokenRepo.Consume(db, reset.ID); err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, reset.UserID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(db, user.ID, hashedPassword)
}

// CurrentUser resolves the authenticated caller from persisted state.
func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func displayName(userType models.UserType, firstName, lastName, username string) string {
	if userType == models.UserTypeClient {
		return strings.TrimSpace(firstName + " " + lastName)
	}
	return username
}

func generateResetToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in no state to serve.
		panic(err)
	}
	return hex.EncodeToString(b)
}
