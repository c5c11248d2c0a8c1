package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t                   *testing.T
	service             usecase.UserUsecase
	txManager           *mockRepo.MockTransactionManager
	userRepo            *mockRepo.MockUserRepository
	refreshTokenRepo    *mockRepo.MockRefreshTokenRepository
	hasher              *mockSvc.MockPasswordHasher
	tokenService        *mockSvc.MockTokenService
	googleAuthService   *mockSvc.MockOAuthAuthService
	firebaseAuthService *mockSvc.MockOAuthAuthService
	sessions            *mockSvc.MockSessionProvider
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	fx := &userServiceFixtures{
		t:                   t,
		txManager:           mockRepo.NewMockTransactionManager(t),
		userRepo:            mockRepo.NewMockUserRepository(t),
		refreshTokenRepo:    mockRepo.NewMockRefreshTokenRepository(t),
		hasher:              mockSvc.NewMockPasswordHasher(t),
		tokenService:        mockSvc.NewMockTokenService(t),
		googleAuthService:   mockSvc.NewMockOAuthAuthService(t),
		firebaseAuthService: mockSvc.NewMockOAuthAuthService(t),
		sessions:            mockSvc.NewMockSessionProvider(t),
	}

	fx.service = NewUserService(UserServiceParams{
		TxManager:           fx.txManager,
		UserRepo:            fx.userRepo,
		RefreshTokenRepo:    fx.refreshTokenRepo,
		Hasher:              fx.hasher,
		TokenService:        fx.tokenService,
		GoogleAuthService:   fx.googleAuthService,
		FirebaseAuthService: fx.firebaseAuthService,
		Sessions:            fx.sessions,
		Config:              newTestConfig(0),
		Logger:              newDiscardLogger(),
	})

	return fx
}

// expectTx runs the next transaction body against a factory prepared by setup.
func (fx *userServiceFixtures) expectTx(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func (fx *userServiceFixtures) expectTokens(userID uuid.UUID, role entity.Role, verified bool) {
	fx.tokenService.EXPECT().GenerateTokens(userID, role, verified).Return("access", "refresh", nil).Once()
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash").Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour).Once()
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    " Test@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
			Return(nil, repository.ErrAuthNotFound)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)

		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.PasswordHash == "hashed_password" && auth.ProviderUserID == "test@example.com"
			})).
			Return(nil)
	})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Test User", Email: "test@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email:    "test@example.com",
		Password: "short",
	})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login_ObservesDevice(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Role: entity.RoleAdmin, EmailVerified: true}
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!", DeviceID: &deviceID}

	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	})
	fx.hasher.EXPECT().Check(input.Password, "hash").Return(true)
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		mockRefreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.UserID == user.ID && token.TokenHash == "refresh-hash"
			})).
			Return(nil)
	})
	fx.expectTokens(user.ID, entity.RoleAdmin, true)
	fx.sessions.EXPECT().
		Observe(ctx, deviceID, mock.MatchedBy(func(id *uuid.UUID) bool { return id != nil && *id == user.ID })).
		Return()

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "nope"}

	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hash"}, nil)
	})
	fx.hasher.EXPECT().Check(input.Password, "hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}

	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
			Return(nil, repository.ErrAuthNotFound)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GoogleLogin_CreatesUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	newUserID := uuid.New()
	oauthUser := &service.OAuthUser{
		ID:            "google-sub",
		Email:         "New@Example.com",
		Name:          "New Shopper",
		Provider:      entity.ProviderTypeGoogle,
		EmailVerified: true,
	}

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				user.ID = newUserID
			}).
			Return(nil)
		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == newUserID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-sub"
			})).
			Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)
	})
	fx.expectTokens(newUserID, entity.RoleCustomer, true)
	fx.sessions.EXPECT().Observe(ctx, deviceID, mock.Anything).Return()

	output, err := fx.service.GoogleLogin(ctx, &usecase.OAuthLoginInput{IDToken: "id-token", DeviceID: &deviceID})

	require.NoError(t, err)
	assert.Equal(t, newUserID, output.User.ID)
	assert.True(t, output.User.EmailVerified)
}

func TestUserService_FirebaseLogin_LinksVerifiedEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "shopper@example.com", Role: entity.RoleCustomer}
	oauthUser := &service.OAuthUser{
		ID:            "fb-uid",
		Email:         "shopper@example.com",
		Provider:      entity.ProviderTypeFirebase,
		EmailVerified: true,
	}

	fx.firebaseAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeFirebase, "fb-uid").
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().FindByEmail(ctx, "shopper@example.com").Return(existing, nil)
		mockAuthRepo.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(user *entity.User) bool { return user.EmailVerified })).
			Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)
	})
	fx.expectTokens(existing.ID, entity.RoleCustomer, true)

	output, err := fx.service.FirebaseLogin(ctx, &usecase.OAuthLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestUserService_OAuthLogin_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("expired"))
	fx.googleAuthService.EXPECT().GetProvider().Return(entity.ProviderTypeGoogle)

	output, err := fx.service.GoogleLogin(ctx, &usecase.OAuthLoginInput{IDToken: "bad"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_OAuthLogin_ProviderMissing(t *testing.T) {
	svc := NewUserService(UserServiceParams{Config: newTestConfig(0), Logger: newDiscardLogger()})

	output, err := svc.FirebaseLogin(context.Background(), &usecase.OAuthLoginInput{IDToken: "x"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestUserService_RefreshToken_ReadsCurrentRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: user.ID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: user.ID}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	})
	fx.tokenService.EXPECT().GenerateTokens(user.ID, entity.RoleSuperAdmin, false).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.expectTx(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)
	})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_TurnsDeviceIntoGuest(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(nil, errors.New("expired"))
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)
	fx.sessions.EXPECT().Observe(ctx, deviceID, (*uuid.UUID)(nil)).Return()

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh", DeviceID: &deviceID})

	require.NoError(t, err)
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	known := &entity.User{ID: uuid.New(), Role: entity.Role("pirate")}
	unknown := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	fx.userRepo.EXPECT().FindByID(ctx, unknown).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)

	_, err = fx.service.GetProfile(ctx, unknown)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestValidatePasswordStrength(t *testing.T) {
	strict := newTestConfig(0)
	strict.PasswordStrength = nil

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "long enough", password: "abcdefgh"},
		{name: "too short", password: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(UserServiceParams{Config: strict, Logger: newDiscardLogger()}).(*userService)
			err := validatePasswordStrength(svc.passwordStrength, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
