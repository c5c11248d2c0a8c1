// Package firebase verifies ID tokens minted by Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of *auth.Client the verifier uses.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier implements service.OAuthAuthService on top of the Firebase Admin SDK.
type Verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// Params holds the dependencies for New.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds a Verifier. Without a project ID the verifier rejects every token.
func New(params Params) (service.OAuthAuthService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		params.Logger.Info("Firebase sign-in disabled: no project id configured")

		return &Verifier{logger: params.Logger}, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	ctx := params.Ctx
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &Verifier{client: client, logger: params.Logger}, nil
}

// VerifyIDToken checks a Firebase ID token and maps it to an OAuthUser.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if v.client == nil {
		return nil, errors.New("firebase sign-in is not configured")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		ID:       token.UID,
		Provider: entity.ProviderTypeFirebase,
	}
	user.Email, _ = token.Claims["email"].(string)
	user.Name, _ = token.Claims["name"].(string)
	user.AvatarURL, _ = token.Claims["picture"].(string)
	user.EmailVerified, _ = token.Claims["email_verified"].(bool)

	if user.Email == "" {
		return nil, errors.New("token carries no email")
	}

	return user, nil
}

// GetProvider returns the OAuth provider type
func (v *Verifier) GetProvider() entity.ProviderType {
	return entity.ProviderTypeFirebase
}
