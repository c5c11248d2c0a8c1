package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersOutput is one page of accounts.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
	Page  int
	Limit int
}

// AdminUsecase backs the admin shell.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
	ListUsers(ctx context.Context, page, limit int) (*ListUsersOutput, error)
	UpdateUserRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error)
}
