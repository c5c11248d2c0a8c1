package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) ListSlugs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var slugs []string
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_slug", &slugs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return slugs, nil
}

func (repo *wishlistRepository) Add(ctx context.Context, userID uuid.UUID, slug string) error {
	row := &model.WishlistItemModel{UserID: userID, ProductSlug: slug}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
	if err != nil {
		return errors.Wrap(err, "failed to add wishlist item")
	}

	return nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID uuid.UUID, slug string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_slug = ?", userID, slug).
		Delete(&model.WishlistItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}
