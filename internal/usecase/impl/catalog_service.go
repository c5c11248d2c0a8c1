package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (srv *catalogService) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	collections, err := srv.catalogRepo.ListCollections(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return collections, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListProducts returns one page of active products, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductListOutput, error) {
	filter = filter.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	products, total, err := srv.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(slug)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
