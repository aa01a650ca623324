// Package middleware contains Echo middleware specific to the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which the authenticated
// user's ID is stored for downstream handlers.
const ContextKeyUserID = "userID"

// ContextKeyUserEmail is the echo.Context key for the authenticated email.
const ContextKeyUserEmail = "userEmail"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token carried in the Authorization
// header. The token travels raw; a "Bearer " prefix is tolerated and
// stripped. Missing or invalid tokens are rejected with 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := strings.TrimSpace(c.Request().Header.Get("Authorization"))
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		if tokenString == "" {
			return domainerrors.ErrTokenRequired
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		// The token decides the identity; any userId in the path or body is
		// overridden by the claims downstream.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)

		return next(c)
	}
}
