package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasv/acadplan/internal/app/models/dto"
	"github.com/lucasv/acadplan/internal/pkg/auth"
)

// AuthMiddleware guards mutating routes with the owner session token.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	enabled    bool
}

// NewAuthMiddleware creates a new AuthMiddleware. When disabled, the
// guard passes every request through (local single-user use).
func NewAuthMiddleware(jwtService *auth.JWTService, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		enabled:    enabled,
	}
}

// OwnerRequired middleware validates the owner access token.
func (m *AuthMiddleware) OwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if _, err := m.jwtService.ValidateToken(tokenString); err != nil {
			code := dto.ErrorCodeInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(code, "Authentication failed")))
			return
		}

		c.Next()
	}
}
