package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying bearer tokens.
// Tokens are not persisted; they are reconstructed from the shared secret on
// each verification.
type TokenService interface {
	// GenerateToken mints a signed access token for the given user.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured token lifetime.
	GetTokenDuration() time.Duration
}
