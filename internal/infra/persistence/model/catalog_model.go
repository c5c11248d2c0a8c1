package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel mirrors the 'collections' table.
type CollectionModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(120);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(120);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Slug         string     `gorm:"type:varchar(220);not null;unique"`
	Description  string     `gorm:"type:text"`
	Active       bool       `gorm:"not null;default:true;index"`
	CollectionID *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time

	Collection *CollectionModel    `gorm:"foreignKey:CollectionID"`
	Category   *CategoryModel      `gorm:"foreignKey:CategoryID"`
	Images     []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants   []VariantModel      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'variants' table.
type VariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Color     string    `gorm:"type:varchar(50)"`
	Size      string    `gorm:"type:varchar(20)"`
	SKU       string    `gorm:"type:varchar(64);unique"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
	SalePrice *float64  `gorm:"type:numeric(12,2)"`
	Stock     int       `gorm:"not null;default:0"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "variants"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	Alt       string    `gorm:"type:varchar(200)"`
	Sort      int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// WishlistItemModel mirrors the 'wishlist_items' table. (user_id, product_slug) is unique.
type WishlistItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_slug"`
	ProductSlug string    `gorm:"type:varchar(220);not null;uniqueIndex:idx_wishlist_user_slug"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&CollectionModel{},
		&CategoryModel{},
		&ProductModel{},
		&VariantModel{},
		&ProductImageModel{},
		&CartModel{},
		&CartItemModel{},
		&WishlistItemModel{},
	}
}
