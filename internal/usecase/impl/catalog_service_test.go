package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_NormalizesFilter(t *testing.T) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCatalogService(catalogRepo, newDiscardLogger())
	ctx := context.Background()

	products := []*entity.Product{{ID: uuid.New(), Slug: "hoodie", Active: true}}
	catalogRepo.EXPECT().
		ListProducts(ctx, entity.ProductFilter{Limit: entity.DefaultProductPageSize, Page: 1, Search: "hood"}).
		Return(products, int64(31), nil)

	output, err := svc.ListProducts(ctx, entity.ProductFilter{Search: "  hood "})

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, int64(31), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, entity.DefaultProductPageSize, output.Limit)
}

func TestCatalogService_ListProducts_ClampsLimit(t *testing.T) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCatalogService(catalogRepo, newDiscardLogger())
	ctx := context.Background()

	catalogRepo.EXPECT().
		ListProducts(ctx, entity.ProductFilter{Limit: entity.MaxProductPageSize, Page: 3, CollectionSlug: "drop-1"}).
		Return([]*entity.Product{}, int64(0), nil)

	output, err := svc.ListProducts(ctx, entity.ProductFilter{Limit: 1000, Page: 3, CollectionSlug: "drop-1"})

	require.NoError(t, err)
	assert.Equal(t, entity.MaxProductPageSize, output.Limit)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCatalogService(catalogRepo, newDiscardLogger())
	ctx := context.Background()

	catalogRepo.EXPECT().FindProductBySlug(ctx, "ghost").Return(nil, repository.ErrProductNotFound)

	product, err := svc.GetProductBySlug(ctx, "ghost")

	assert.Nil(t, product)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_ListCollections_Error(t *testing.T) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCatalogService(catalogRepo, newDiscardLogger())
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	catalogRepo.EXPECT().ListCollections(ctx).Return(nil, dbErr)

	collections, err := svc.ListCollections(ctx)

	assert.Nil(t, collections)
	assert.True(t, errors.Is(err, dbErr))
}

func TestWishlistService_ListKeepsSavedOrder(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewWishlistService(wishlistRepo, catalogRepo, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	wishlistRepo.EXPECT().ListSlugs(ctx, userID).Return([]string{"cap", "retired", "hoodie"}, nil)
	catalogRepo.EXPECT().
		FindProductsBySlugs(ctx, []string{"cap", "retired", "hoodie"}).
		Return([]*entity.Product{{Slug: "hoodie"}, {Slug: "cap"}}, nil)

	products, err := svc.List(ctx, userID)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "cap", products[0].Slug)
	assert.Equal(t, "hoodie", products[1].Slug)
}

func TestWishlistService_ListEmpty(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	svc := NewWishlistService(wishlistRepo, mockRepo.NewMockCatalogRepository(t), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	wishlistRepo.EXPECT().ListSlugs(ctx, userID).Return(nil, nil)

	products, err := svc.List(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("known product", func(t *testing.T) {
		wishlistRepo := mockRepo.NewMockWishlistRepository(t)
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		svc := NewWishlistService(wishlistRepo, catalogRepo, newDiscardLogger())

		catalogRepo.EXPECT().FindProductBySlug(ctx, "hoodie").Return(&entity.Product{Slug: "hoodie"}, nil)
		wishlistRepo.EXPECT().Add(ctx, userID, "hoodie").Return(nil)

		require.NoError(t, svc.Add(ctx, userID, " hoodie "))
	})

	t.Run("unknown product", func(t *testing.T) {
		catalogRepo := mockRepo.NewMockCatalogRepository(t)
		svc := NewWishlistService(mockRepo.NewMockWishlistRepository(t), catalogRepo, newDiscardLogger())

		catalogRepo.EXPECT().FindProductBySlug(ctx, "ghost").Return(nil, repository.ErrProductNotFound)

		err := svc.Add(ctx, userID, "ghost")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	})

	t.Run("blank slug", func(t *testing.T) {
		svc := NewWishlistService(mockRepo.NewMockWishlistRepository(t), mockRepo.NewMockCatalogRepository(t), newDiscardLogger())

		assert.Error(t, svc.Add(ctx, userID, "   "))
	})
}

func TestWishlistService_Remove(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	svc := NewWishlistService(wishlistRepo, mockRepo.NewMockCatalogRepository(t), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	wishlistRepo.EXPECT().Remove(ctx, userID, "hoodie").Return(nil)

	require.NoError(t, svc.Remove(ctx, userID, "hoodie"))
}
