// internal/services/auth_service.go
// Authentication and authorization service

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and authorization
type AuthService struct {
	userRepo *repositories.UserRepository
	config   config.AuthConfig
	cache    *CacheService
	logger   *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo *repositories.UserRepository,
	config config.AuthConfig,
	cache *CacheService,
	logger *log.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   config,
		cache:    cache,
		logger:   logger,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, *models.TokenPair, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           utils.NewID(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenPair, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenPair, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	cacheKey := refreshTokenKey(refreshToken)
	var userID string
	if err := s.cache.Get(cacheKey, &userID); err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	s.cache.Delete(cacheKey)
	return s.issueTokens(user)
}

// ValidateToken validates a JWT token and returns the user ID and role
func (s *AuthService) ValidateToken(token string) (string, string, error) {
	userID, role, err := utils.ParseJWT(token, s.config.JWTSecret)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	return userID, role, nil
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.cache.Delete(refreshTokenKey(refreshToken))
	}
	return nil
}

// issueTokens creates an access/refresh token pair for the user
func (s *AuthService) issueTokens(user *models.User) (*models.TokenPair, error) {
	accessToken, err := utils.SignJWT(user.ID, string(user.Role), s.config.JWTSecret, s.config.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := utils.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.cache.Set(refreshTokenKey(refreshToken), user.ID, s.config.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to cache refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.config.JWTExpiration),
	}, nil
}

func refreshTokenKey(token string) string {
	return fmt.Sprintf("refresh_token_%s", token)
}
