package firebase

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s *stubVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	v := &Verifier{
		client: &stubVerifier{token: &auth.Token{
			UID: "fb-uid",
			Claims: map[string]any{
				"email":          "shopper@example.com",
				"name":           "Shopper",
				"email_verified": true,
			},
		}},
		logger: slog.Default(),
	}

	user, err := v.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.Equal(t, "Shopper", user.Name)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.ProviderTypeFirebase, user.Provider)
}

func TestVerifier_Rejections(t *testing.T) {
	v := &Verifier{client: &stubVerifier{err: errors.New("expired")}, logger: slog.Default()}
	_, err := v.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "invalid ID token")

	v = &Verifier{client: &stubVerifier{token: &auth.Token{UID: "x", Claims: map[string]any{}}}, logger: slog.Default()}
	_, err = v.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "no email")
}

func TestNew_WithoutProjectIsDisabled(t *testing.T) {
	svc, err := New(Params{Ctx: context.Background(), Config: &config.Config{}, Logger: slog.Default()})
	require.NoError(t, err)

	_, err = svc.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "not configured")
	assert.Equal(t, entity.ProviderTypeFirebase, svc.GetProvider())
}
