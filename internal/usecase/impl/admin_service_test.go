package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixture struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	catalogRepo *mockRepo.MockCatalogRepository
	txUserRepo  *mockRepo.MockUserRepository
}

func createTestAdminService(t *testing.T) *adminServiceFixture {
	fx := &adminServiceFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		txUserRepo:  mockRepo.NewMockUserRepository(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		TxManager:   fx.txManager,
		UserRepo:    fx.userRepo,
		CatalogRepo: fx.catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func (fx *adminServiceFixture) expectTx(t *testing.T, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(fx.txUserRepo)

			return fn(factory)
		})
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.catalogRepo.EXPECT().CountProducts(ctx).Return(int64(42), nil)
	fx.catalogRepo.EXPECT().CountOutOfStockVariants(ctx).Return(int64(3), nil)
	fx.userRepo.EXPECT().Count(ctx).Return(int64(7), nil)

	stats, err := fx.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{Products: 42, OutOfStockVariants: 3, Users: 7}, stats)
}

func TestAdminService_ListUsers_DefaultsPaging(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx, 0, defaultUserPageSize).
		Return([]*entity.User{{ID: uuid.New(), Role: entity.Role("")}}, int64(1), nil)

	output, err := fx.service.ListUsers(ctx, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, defaultUserPageSize, output.Limit)
	assert.Equal(t, entity.RoleCustomer, output.Users[0].Role)
}

func TestAdminService_UpdateUserRole_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	target := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	fx.expectTx(t, ctx)
	fx.txUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.txUserRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.txUserRepo.EXPECT().UpdateRole(ctx, target.ID, entity.RoleAdmin).Return(nil)

	user, err := fx.service.UpdateUserRole(ctx, actor.ID, target.ID, entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAdminService_UpdateUserRole_ActorNotSuperAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.expectTx(t, ctx)
	fx.txUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	user, err := fx.service.UpdateUserRole(ctx, actor.ID, uuid.New(), entity.RoleAdmin)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_UpdateUserRole_TargetMissing(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	missing := uuid.New()

	fx.expectTx(t, ctx)
	fx.txUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.txUserRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateUserRole(ctx, actor.ID, missing, entity.RoleCustomer)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_UpdateUserRole_RejectedBeforeTransaction(t *testing.T) {
	tests := []struct {
		name    string
		sameIDs bool
		role    entity.Role
		code    string
	}{
		{name: "unknown role", role: entity.Role("owner"), code: "VALIDATION_FAILED"},
		{name: "own role", sameIDs: true, role: entity.RoleCustomer, code: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			actorID, userID := uuid.New(), uuid.New()
			if tt.sameIDs {
				userID = actorID
			}

			_, err := fx.service.UpdateUserRole(context.Background(), actorID, userID, tt.role)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.code, appErr.ErrorCode())
		})
	}
}
