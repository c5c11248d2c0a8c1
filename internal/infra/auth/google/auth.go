// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validIssuers are the issuers Google puts in its ID tokens.
var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

// IDTokenClaims is the profile part of a Google ID token.
type IDTokenClaims struct {
	Sub           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService. Signatures are checked against Google's published keys.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	var clientID string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	claims := claimsFromPayload(payload)
	if !claims.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("userID", claims.Sub))

	return &service.OAuthUser{
		ID:            claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claims.Picture,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimsFromPayload(payload *idtoken.Payload) *IDTokenClaims {
	claims := &IDTokenClaims{Sub: payload.Subject}
	claims.Email, _ = payload.Claims["email"].(string)
	claims.Name, _ = payload.Claims["name"].(string)
	claims.Picture, _ = payload.Claims["picture"].(string)

	// Google has sent email_verified both as a bool and as the string "true".
	switch v := payload.Claims["email_verified"].(type) {
	case bool:
		claims.EmailVerified = v
	case string:
		claims.EmailVerified = v == "true"
	}

	return claims
}
