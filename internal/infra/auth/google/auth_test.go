package google

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func payloadWith(claims map[string]any) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "test_user_123",
		Claims:   claims,
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return payloadWith(map[string]any{
			"email":          "test@example.com",
			"name":           "Test User",
			"picture":        "https://example.com/a.png",
			"email_verified": true,
		}), nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
		wantErr string
	}{
		{
			name:    "validation error",
			err:     errors.New("idtoken: invalid token"),
			wantErr: "invalid ID token",
		},
		{
			name: "wrong issuer",
			payload: &idtoken.Payload{
				Issuer: "https://evil.example.com",
				Claims: map[string]any{"email_verified": true},
			},
			wantErr: "invalid issuer",
		},
		{
			name:    "unverified email",
			payload: payloadWith(map[string]any{"email": "a@b.c", "email_verified": false}),
			wantErr: "email not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Nil(t, user)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestClaimsFromPayload_StringEmailVerified(t *testing.T) {
	claims := claimsFromPayload(payloadWith(map[string]any{"email_verified": "true"}))
	assert.True(t, claims.EmailVerified)

	claims = claimsFromPayload(payloadWith(map[string]any{}))
	assert.False(t, claims.EmailVerified)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
