package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// TokenPair holds both tokens issued on login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Tokens TokenPair    `json:"tokens"`
	User   *entity.User `json:"user"`
}

// Login authenticates a user by name and password and issues tokens
// carrying the capability names derived from the user's privilege record.
func (s *AuthService) Login(ctx context.Context, name, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	caps := user.Privilege.Capabilities()
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, caps.Names())
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &LoginResult{
		Tokens: TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		User:   user,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// privilege record is re-read so revoked capabilities drop out of the
// new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	caps := user.Privilege.Capabilities()
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, caps.Names())
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Profile returns the authenticated user's record
func (s *AuthService) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperror.NewBadRequestError("Current password is incorrect")
	}
	if len(newPassword) < 6 {
		return apperror.NewBadRequestError("Password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.ErrInternalServer
	}

	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}
