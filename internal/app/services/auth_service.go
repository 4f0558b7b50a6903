package services

import (
	"context"
	"errors"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/ndthanh/studentms/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// UserStore is the subset of the user repository the auth service depends on.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, verify func(currentHash string) error, newHash string) error
}

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	users      UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues an access token. An inactive account
// never receives a token, even with a correct password.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveAccount
	}

	accessToken, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("Failed to generate access token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ChangePassword verifies the current password and replaces it with a new
// hash. Verification and replacement happen against the same stored hash; the
// store runs both inside one transaction.
func (s *authService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.ChangePassword(ctx, userID, func(currentHash string) error {
		if !auth.CheckPassword(currentHash, req.CurrentPassword) {
			return apperrors.ErrIncorrectPassword
		}
		return nil
	}, newHash)
}

// GetProfile returns the user record for the authenticated caller.
func (s *authService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
