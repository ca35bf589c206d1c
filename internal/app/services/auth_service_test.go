package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasv/acadplan/internal/pkg/apperrors"
	"github.com/lucasv/acadplan/internal/pkg/auth"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("owner-pass")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadplan.test",
	})
	svc := NewAuthService(jwtService, hash)
	assert.True(t, svc.Enabled())

	token, expiresIn, err := svc.Login("owner-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	_, _, err = svc.Login("wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(nil, "")
	assert.False(t, svc.Enabled())

	_, _, err := svc.Login("anything")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
