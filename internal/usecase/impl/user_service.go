// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPasswordMinLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	txManager           repository.TransactionManager
	userRepo            repository.UserRepository
	refreshTokenRepo    repository.RefreshTokenRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	googleAuthService   service.OAuthAuthService
	firebaseAuthService service.OAuthAuthService
	sessions            service.SessionProvider
	passwordStrength    config.PasswordStrengthConfig
	maxActiveSessions   int
	logger              *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	UserRepo            repository.UserRepository
	RefreshTokenRepo    repository.RefreshTokenRepository
	Hasher              service.PasswordHasher
	TokenService        service.TokenService
	GoogleAuthService   service.OAuthAuthService `name:"google"`
	FirebaseAuthService service.OAuthAuthService `name:"firebase"`
	Sessions            service.SessionProvider
	Config              *config.Config
	Logger              *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	strength := config.PasswordStrengthConfig{MinLength: defaultPasswordMinLength}
	if params.Config != nil && params.Config.PasswordStrength != nil {
		strength = *params.Config.PasswordStrength
	}

	return &userService{
		txManager:           params.TxManager,
		userRepo:            params.UserRepo,
		refreshTokenRepo:    params.RefreshTokenRepo,
		hasher:              params.Hasher,
		tokenService:        params.TokenService,
		googleAuthService:   params.GoogleAuthService,
		firebaseAuthService: params.FirebaseAuthService,
		sessions:            params.Sessions,
		passwordStrength:    strength,
		maxActiveSessions:   maxActiveSessions,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account with an email/password credential.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := validatePasswordStrength(srv.passwordStrength, input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  strings.TrimSpace(input.Name),
			Email: email,
			Role:  entity.RoleCustomer,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the email/password login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}

	srv.observe(ctx, input.DeviceID, &output.User.ID)
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return authRecord, nil
}

// GoogleLogin signs in (or signs up) with a Google ID token.
func (srv *userService) GoogleLogin(ctx context.Context, input *usecase.OAuthLoginInput) (*usecase.LoginOutput, error) {
	return srv.oauthLogin(ctx, srv.googleAuthService, input)
}

// FirebaseLogin signs in (or signs up) with a Firebase ID token.
func (srv *userService) FirebaseLogin(ctx context.Context, input *usecase.OAuthLoginInput) (*usecase.LoginOutput, error) {
	return srv.oauthLogin(ctx, srv.firebaseAuthService, input)
}

func (srv *userService) oauthLogin(ctx context.Context, provider service.OAuthAuthService, input *usecase.OAuthLoginInput) (*usecase.LoginOutput, error) {
	if provider == nil {
		return nil, domainerrors.ErrProviderUnavailable
	}

	oauthUser, err := provider.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.String("provider", provider.GetProvider().String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateOAuthUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute OAuth login transaction", slog.String("provider", oauthUser.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute OAuth login transaction")
	}

	srv.observe(ctx, input.DeviceID, &output.User.ID)

	return output, nil
}

// findOrCreateOAuthUser resolves the account behind a provider identity.
// An unknown identity with a verified email is linked to the account owning that email.
func (srv *userService) findOrCreateOAuthUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user by id for oauth login")
		}

		return srv.markEmailVerified(ctx, userRepo, user, oauthUser)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !oauthUser.EmailVerified {
			return nil, errors.Wrap(domainerrors.ErrConflict, "email belongs to another account")
		}
		srv.log(ctx).Info("Linking provider identity to existing account", slog.Any("userID", user.ID), slog.String("provider", oauthUser.Provider.String()))
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Name:          oauthUser.Name,
			Email:         email,
			Role:          entity.RoleCustomer,
			EmailVerified: oauthUser.EmailVerified,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for oauth login")
		}
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create oauth authentication")
	}

	return srv.markEmailVerified(ctx, userRepo, user, oauthUser)
}

func (srv *userService) markEmailVerified(ctx context.Context, userRepo repository.UserRepository, user *entity.User, oauthUser *service.OAuthUser) (*entity.User, error) {
	if user.EmailVerified || !oauthUser.EmailVerified || !strings.EqualFold(user.Email, oauthUser.Email) {
		return user, nil
	}

	user.EmailVerified = true
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to mark email verified")
	}

	return user, nil
}

// issueSession generates tokens and stores the refresh token, enforcing the session limit.
func (srv *userService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.RoleOrDefault(user.Role.String()), user.EmailVerified)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, repoFactory, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// storeRefreshToken stores the refresh token in the database
func (srv *userService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if srv.maxActiveSessions > 0 {
		if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken handles the process of issuing a new access token using a refresh token.
// The refresh token remains unchanged; the role is re-read so promotions take effect.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, entity.RoleOrDefault(user.Role.String()), user.EmailVerified)
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout deletes the refresh token and turns the device back into a guest.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.observe(ctx, input.DeviceID, nil)
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile returns the current user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	user.Role = entity.RoleOrDefault(user.Role.String())

	return user, nil
}

func (srv *userService) observe(ctx context.Context, deviceID *uuid.UUID, userID *uuid.UUID) {
	if deviceID == nil || srv.sessions == nil {
		return
	}

	srv.sessions.Observe(ctx, *deviceID, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePasswordStrength checks password against the configured rules.
func validatePasswordStrength(rules config.PasswordStrengthConfig, password string) error {
	minLength := rules.MinLength
	if minLength <= 0 {
		minLength = defaultPasswordMinLength
	}

	length := len([]rune(password))
	if length < minLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case rules.RequireUppercase && !upper:
		return domainerrors.ErrValidationFailed.WithDetails("password needs an uppercase letter")
	case rules.RequireLowercase && !lower:
		return domainerrors.ErrValidationFailed.WithDetails("password needs a lowercase letter")
	case rules.RequireNumbers && !digit:
		return domainerrors.ErrValidationFailed.WithDetails("password needs a digit")
	case rules.RequireSpecial && !special:
		return domainerrors.ErrValidationFailed.WithDetails("password needs a special character")
	}

	return nil
}
