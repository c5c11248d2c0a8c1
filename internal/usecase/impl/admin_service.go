package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultUserPageSize = 20

type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// Dashboard counts products, sold-out variants and accounts.
func (srv *adminService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	products, err := srv.catalogRepo.CountProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	outOfStock, err := srv.catalogRepo.CountOutOfStockVariants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count out of stock variants")
	}

	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &entity.DashboardStats{
		Products:           products,
		OutOfStockVariants: outOfStock,
		Users:              users,
	}, nil
}

func (srv *adminService) ListUsers(ctx context.Context, page, limit int) (*usecase.ListUsersOutput, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > entity.MaxProductPageSize {
		limit = defaultUserPageSize
	}

	users, total, err := srv.userRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	for _, user := range users {
		user.Role = entity.RoleOrDefault(user.Role.String())
	}

	return &usecase.ListUsersOutput{
		Users: users,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// UpdateUserRole changes a user's role. The actor's role is re-read inside the
// transaction so a demoted super admin loses the right immediately.
func (srv *adminService) UpdateUserRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
	}
	if actorID == userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot change own role")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		actor, err := userRepo.FindByID(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to find acting user")
		}
		if !actor.IsSuperAdmin() {
			return errors.Wrap(domainerrors.ErrForbidden, "only super admins can change roles")
		}

		target, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target user not found")
			}

			return errors.Wrap(err, "failed to find target user")
		}

		if err := userRepo.UpdateRole(ctx, userID, role); err != nil {
			return errors.Wrap(err, "failed to update role")
		}
		target.Role = role
		updated = target

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute role update transaction")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User role changed",
		slog.String("actorID", actorID.String()),
		slog.String("userID", userID.String()),
		slog.String("role", role.String()),
	)

	return updated, nil
}
