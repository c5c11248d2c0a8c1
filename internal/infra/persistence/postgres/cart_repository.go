package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the domain.CartRepository interface.
// Each call is a single statement, so no transaction is involved.
// Reads are pinned to the primary: the engine re-reads lines right after writing them.
type cartRepository struct {
	db *gorm.DB
}

func (repo *cartRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindCartByUser returns the cart owned by userID.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.primary(ctx).Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart inserts the cart of userID.
func (repo *cartRepository) CreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cartM := &model.CartModel{UserID: userID}
	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateCart
		}

		return nil, errors.Wrap(err, "failed to create cart")
	}

	return toCartDomain(cartM), nil
}

// ListCartItems returns every line of the cart in insertion order.
func (repo *cartRepository) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]entity.CartLine, error) {
	var rows []model.CartItemModel
	err := repo.primary(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	lines := make([]entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.CartLine{VariantID: row.VariantID, Quantity: row.Quantity})
	}

	return lines, nil
}

// FindCartItem returns the line of variantID.
func (repo *cartRepository) FindCartItem(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItemRow, error) {
	var row model.CartItemModel
	err := repo.primary(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return &entity.CartItemRow{
		ID:        row.ID,
		CartID:    row.CartID,
		VariantID: row.VariantID,
		Quantity:  row.Quantity,
	}, nil
}

// InsertCartItem adds a line for variantID.
func (repo *cartRepository) InsertCartItem(ctx context.Context, cartID, variantID uuid.UUID, quantity int) error {
	row := &model.CartItemModel{CartID: cartID, VariantID: variantID, Quantity: quantity}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCartItem
		}

		return errors.Wrap(err, "failed to insert cart item")
	}

	return nil
}

// UpdateCartItemQuantity sets the quantity of a line.
func (repo *cartRepository) UpdateCartItemQuantity(ctx context.Context, rowID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", rowID).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteCartItem removes the line of variantID, if any.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, cartID, variantID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND variant_id = ?", cartID, variantID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// DeleteAllCartItems removes every line of the cart.
func (repo *cartRepository) DeleteAllCartItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
