package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FetchVariantsWithProduct loads variants, their product and the product images in one round of preloads.
func (repo *catalogRepository) FetchVariantsWithProduct(ctx context.Context, variantIDs []uuid.UUID) ([]*entity.Variant, error) {
	if len(variantIDs) == 0 {
		return []*entity.Variant{}, nil
	}

	var rows []model.VariantModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort ASC")
		}).
		Where("id IN ?", variantIDs).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch variants with product")
	}

	variants := make([]*entity.Variant, 0, len(rows))
	for i := range rows {
		variant := toVariantDomain(&rows[i])
		if rows[i].Product != nil {
			variant.Product = toProductDomain(rows[i].Product)
		}
		variants = append(variants, &variant)
	}

	return variants, nil
}

// ListCollections returns every collection ordered by name.
func (repo *catalogRepository) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	var rows []model.CollectionModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	collections := make([]*entity.Collection, 0, len(rows))
	for i := range rows {
		collections = append(collections, toCollectionDomain(&rows[i]))
	}

	return collections, nil
}

// ListCategories returns every category ordered by name.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, toCategoryDomain(&rows[i]))
	}

	return categories, nil
}

// ListProducts returns one page of active products, newest first, with the exact total.
func (repo *catalogRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	filter = filter.Normalize()

	scoped := repo.applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)

	var total int64
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var rows []model.ProductModel
	err := repo.applyProductFilter(repo.db.WithContext(ctx), filter).
		Preload("Collection").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort ASC")
		}).
		Preload("Variants").
		Order("products.created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, total, nil
}

func (repo *catalogRepository) applyProductFilter(db *gorm.DB, filter entity.ProductFilter) *gorm.DB {
	db = db.Where("products.active = ?", true)
	if filter.CollectionSlug != "" {
		db = db.Where("products.collection_id IN (?)",
			repo.db.Model(&model.CollectionModel{}).Select("id").Where("slug = ?", filter.CollectionSlug))
	}
	if filter.CategorySlug != "" {
		db = db.Where("products.category_id IN (?)",
			repo.db.Model(&model.CategoryModel{}).Select("id").Where("slug = ?", filter.CategorySlug))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		db = db.Where("products.title ILIKE ?", "%"+search+"%")
	}

	return db
}

// FindProductBySlug returns an active product with its images and variants.
func (repo *catalogRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var row model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Collection").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort ASC")
		}).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC, color ASC")
		}).
		Where("slug = ? AND active = ?", slug, true).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&row), nil
}

// FindProductsBySlugs returns the active products among slugs.
func (repo *catalogRepository) FindProductsBySlugs(ctx context.Context, slugs []string) ([]*entity.Product, error) {
	if len(slugs) == 0 {
		return []*entity.Product{}, nil
	}

	var rows []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort ASC")
		}).
		Preload("Variants").
		Where("slug IN ? AND active = ?", slugs, true).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by slugs")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, nil
}

// CountProducts returns the number of products, active or not.
func (repo *catalogRepository) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

// CountOutOfStockVariants returns the number of variants with no stock left.
func (repo *catalogRepository) CountOutOfStockVariants(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.VariantModel{}).Where("stock <= 0").Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count out of stock variants")
	}

	return total, nil
}

// --- Mapper Functions ---

func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	return &entity.Collection{ID: data.ID, Name: data.Name, Slug: data.Slug}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{ID: data.ID, Name: data.Name, Slug: data.Slug}
}

func toVariantDomain(data *model.VariantModel) entity.Variant {
	return entity.Variant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Color:     data.Color,
		Size:      data.Size,
		SKU:       data.SKU,
		Price:     data.Price,
		SalePrice: data.SalePrice,
		Stock:     data.Stock,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, entity.ProductImage{ID: img.ID, URL: img.URL, Alt: img.Alt, Sort: img.Sort})
	}

	variants := make([]entity.Variant, 0, len(data.Variants))
	for i := range data.Variants {
		variants = append(variants, toVariantDomain(&data.Variants[i]))
	}

	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Active:      data.Active,
		Collection:  toCollectionDomain(data.Collection),
		Category:    toCategoryDomain(data.Category),
		Images:      images,
		Variants:    variants,
		CreatedAt:   data.CreatedAt,
	}
}
