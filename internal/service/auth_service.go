package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"motohub/internal/auth"
	apperrors "motohub/internal/errors"
	"motohub/internal/model"
	"motohub/internal/repository"
)

const bcryptCost = 10

// AuthService handles admin authentication.
type AuthService interface {
	// Login checks the credential pair and issues a session token with its
	// explicit expiry for client display.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, user *model.AdminUser, err error)
	// Verify reports whether a token is valid. It never errors: signature,
	// expiry, and malformed-token failures all collapse to ok=false. The
	// store is not consulted.
	Verify(token string) (claims *auth.Claims, ok bool)
	// SeedAdmin creates the single admin credential row if none exists.
	SeedAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	adminRepo  repository.AdminUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminUserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates the admin and issues a session token.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, *model.AdminUser, error) {
	user, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", time.Time{}, nil, apperrors.ErrInvalidCredentials
		}
		return "", time.Time{}, nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("generate session token: %w", err)
	}

	return token, expiresAt, user, nil
}

// Verify collapses every validation failure into ok=false.
func (s *authService) Verify(token string) (*auth.Claims, bool) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// SeedAdmin provisions the credential row at first boot.
func (s *authService) SeedAdmin(ctx context.Context, username, password string) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Printf("seeded admin credential for %q", username)
	return nil
}
