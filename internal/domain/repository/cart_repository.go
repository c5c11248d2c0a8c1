package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for server cart persistence.
var (
	// ErrCartNotFound is returned when the user owns no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrDuplicateCart is returned when a second cart is created for the same user.
	ErrDuplicateCart = errors.New("cart already exists for user")
	// ErrCartItemNotFound is returned when the cart has no line for the variant.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrDuplicateCartItem is returned when a (cart, variant) line already exists.
	ErrDuplicateCartItem = errors.New("cart item already exists")
)

// CartRepository is the remote, per-user cart store.
// Every call may fail with a transport or permission error.
type CartRepository interface {
	// FindCartByUser returns the single cart owned by userID, or ErrCartNotFound.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateCart creates the cart for userID. A second call for the same user fails with ErrDuplicateCart.
	CreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// ListCartItems returns every line of the cart.
	ListCartItems(ctx context.Context, cartID uuid.UUID) ([]entity.CartLine, error)

	// FindCartItem returns the line for variantID, or ErrCartItemNotFound.
	FindCartItem(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItemRow, error)

	// InsertCartItem adds a new line. Fails with ErrDuplicateCartItem when the variant is already present.
	InsertCartItem(ctx context.Context, cartID, variantID uuid.UUID, quantity int) error

	// UpdateCartItemQuantity sets the quantity of a line by row ID.
	UpdateCartItemQuantity(ctx context.Context, rowID uuid.UUID, quantity int) error

	// DeleteCartItem removes the line for variantID. Absent lines are not an error.
	DeleteCartItem(ctx context.Context, cartID, variantID uuid.UUID) error

	// DeleteAllCartItems empties the cart.
	DeleteAllCartItems(ctx context.Context, cartID uuid.UUID) error
}

// GuestCartRepository is the device-scoped guest cart store. It holds a single
// list of lines per device under a fixed namespace. Missing or corrupt data
// reads as an empty cart.
type GuestCartRepository interface {
	// Load returns the lines stored for the device.
	Load(ctx context.Context, deviceID uuid.UUID) ([]entity.CartLine, error)

	// Save replaces the whole list stored for the device.
	Save(ctx context.Context, deviceID uuid.UUID, lines []entity.CartLine) error

	// Clear empties the list stored for the device.
	Clear(ctx context.Context, deviceID uuid.UUID) error
}
