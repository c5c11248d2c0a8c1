package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID        uuid.UUID   `json:"uid"`
	Role          entity.Role `json:"role,omitempty"`
	EmailVerified bool        `json:"ev,omitempty"`
	Type          string      `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	// Only the access token carries the role.
	GenerateTokens(userID uuid.UUID, role entity.Role, emailVerified bool) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks the signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks the signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
