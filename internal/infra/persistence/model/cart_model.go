package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A user owns at most one cart.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. (cart_id, variant_id) is unique.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
