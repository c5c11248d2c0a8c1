package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalogRepo  repository.CatalogRepository
	logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// List resolves the saved slugs to products, keeping the saved order.
// Slugs of products that were removed or deactivated are skipped.
func (srv *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	slugs, err := srv.wishlistRepo.ListSlugs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}
	if len(slugs) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.catalogRepo.FindProductsBySlugs(ctx, slugs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve wishlist products")
	}

	bySlug := make(map[string]*entity.Product, len(products))
	for _, product := range products {
		bySlug[product.Slug] = product
	}

	ordered := make([]*entity.Product, 0, len(slugs))
	for _, slug := range slugs {
		if product, ok := bySlug[slug]; ok {
			ordered = append(ordered, product)
		}
	}

	return ordered, nil
}

// Add saves a product slug; saving it twice is fine.
func (srv *wishlistService) Add(ctx context.Context, userID uuid.UUID, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domainerrors.ErrValidationFailed.WithDetails("slug is required")
	}

	if _, err := srv.catalogRepo.FindProductBySlug(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WithDetails(slug)
		}

		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.wishlistRepo.Add(ctx, userID, slug); err != nil {
		return errors.Wrap(err, "failed to add to wishlist")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Wishlist item added", slog.String("slug", slug))

	return nil
}

// Remove drops a product slug; removing an absent one is fine.
func (srv *wishlistService) Remove(ctx context.Context, userID uuid.UUID, slug string) error {
	if err := srv.wishlistRepo.Remove(ctx, userID, strings.TrimSpace(slug)); err != nil {
		return errors.Wrap(err, "failed to remove from wishlist")
	}

	return nil
}
