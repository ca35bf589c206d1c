package services

import (
	"github.com/lucasv/acadplan/internal/pkg/apperrors"
	"github.com/lucasv/acadplan/internal/pkg/auth"
)

// AuthService handles the owner session. The planner has exactly one
// user, identified by a bcrypt-hashed password from configuration.
type AuthService struct {
	jwtService   *auth.JWTService
	passwordHash string
}

// NewAuthService creates a new auth service. An empty password hash
// disables authentication entirely.
func NewAuthService(jwtService *auth.JWTService, passwordHash string) *AuthService {
	return &AuthService{
		jwtService:   jwtService,
		passwordHash: passwordHash,
	}
}

// Enabled reports whether owner authentication is configured.
func (s *AuthService) Enabled() bool {
	return s.passwordHash != ""
}

// Login verifies the owner password and issues an access token.
func (s *AuthService) Login(password string) (token string, expiresIn int, err error) {
	if !s.Enabled() {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(s.passwordHash, password) {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	return s.jwtService.GenerateAccessToken()
}
