package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID        = "userID"
	keyRole          = "role"
	keyEmailVerified = "emailVerified"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Identify resolves a Bearer token when one is present and lets the request through either way.
// Device middleware relies on it to learn whether the device browses as a guest.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.ValidateAccessToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}

		return next(c)
	}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); ok {
			return next(c)
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		setClaims(c, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !role.Satisfies(required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || strings.TrimSpace(tokenString) == "" {
		return "", false
	}

	return strings.TrimSpace(tokenString), true
}

func setClaims(c echo.Context, claims *service.Claims) {
	c.Set(keyUserID, claims.UserID)
	c.Set(keyRole, entity.RoleOrDefault(claims.Role.String()))
	c.Set(keyEmailVerified, claims.EmailVerified)
}

// GetUserID returns the authenticated user ID set by Identify or Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRole returns the role carried by the access token.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}
