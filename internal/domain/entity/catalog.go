package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultProductPageSize is the page size used when none is requested.
	DefaultProductPageSize = 24
	// MaxProductPageSize caps a single catalog page.
	MaxProductPageSize = 100
)

// Collection groups products for merchandising (e.g. a season drop).
type Collection struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Category classifies products by type (e.g. hoodies, caps).
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductImage is one picture of a product; lower Sort comes first.
type ProductImage struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Alt  string    `json:"alt,omitempty"`
	Sort int       `json:"sort"`
}

// Variant is a purchasable color/size combination of a product.
type Variant struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	SalePrice *float64  `json:"salePrice"`
	Stock     int       `json:"stock"`

	// Product is only populated by lookups that join the parent product.
	Product *Product `json:"product,omitempty"`
}

// Product is a catalog entry with its images and variants.
type Product struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Active      bool           `json:"active"`
	Collection  *Collection    `json:"collection,omitempty"`
	Category    *Category      `json:"category,omitempty"`
	Images      []ProductImage `json:"images"`
	Variants    []Variant      `json:"variants"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// PrimaryImageURL returns the URL of the image with the lowest sort order.
func (p *Product) PrimaryImageURL() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}

	best := p.Images[0]
	for _, img := range p.Images[1:] {
		if img.Sort < best.Sort {
			best = img
		}
	}

	return best.URL
}

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Limit          int
	Page           int
	CollectionSlug string
	CategorySlug   string
	Search         string
}

// Normalize applies the default page and size and clamps out-of-range values.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultProductPageSize
	}
	if f.Limit > MaxProductPageSize {
		f.Limit = MaxProductPageSize
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	return f
}

// Offset is the zero-based index of the first row of the page.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ProductPage is one page of a catalog listing plus the exact total.
type ProductPage struct {
	Items []*Product `json:"items"`
	Total int64      `json:"total"`
}
