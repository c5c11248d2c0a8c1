package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductListOutput is one page of products.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
	Page     int
	Limit    int
}

// CatalogUsecase is the read side of the catalog.
type CatalogUsecase interface {
	ListCollections(ctx context.Context) ([]*entity.Collection, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductListOutput, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
}

// WishlistUsecase manages the product slugs a user saved for later.
type WishlistUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
	Add(ctx context.Context, userID uuid.UUID, slug string) error
	Remove(ctx context.Context, userID uuid.UUID, slug string) error
}
