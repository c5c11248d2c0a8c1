package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no active product matches the slug.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read side of the product catalog.
type CatalogRepository interface {
	// FetchVariantsWithProduct loads the variants in one request, each with its parent product and images.
	// Unknown IDs are simply absent from the result.
	FetchVariantsWithProduct(ctx context.Context, variantIDs []uuid.UUID) ([]*entity.Variant, error)

	// ListCollections returns every collection ordered by name.
	ListCollections(ctx context.Context) ([]*entity.Collection, error)

	// ListCategories returns every category ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts returns one page of active products, newest first, and the exact total.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// FindProductBySlug returns a product with images and variants, or ErrProductNotFound.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindProductsBySlugs returns the active products among slugs.
	FindProductsBySlugs(ctx context.Context, slugs []string) ([]*entity.Product, error)

	// CountProducts returns the number of products.
	CountProducts(ctx context.Context) (int64, error)

	// CountOutOfStockVariants returns the number of variants with no stock left.
	CountOutOfStockVariants(ctx context.Context) (int64, error)
}

// WishlistRepository stores the product slugs a user saved for later.
type WishlistRepository interface {
	// ListSlugs returns the saved slugs, most recent first.
	ListSlugs(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Add saves a slug. Saving it twice is not an error.
	Add(ctx context.Context, userID uuid.UUID, slug string) error

	// Remove drops a slug. Removing an absent slug is not an error.
	Remove(ctx context.Context, userID uuid.UUID, slug string) error
}
