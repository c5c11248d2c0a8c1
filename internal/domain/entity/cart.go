package entity

import (
	"time"

	"github.com/google/uuid"
)

// FallbackProductTitle is shown for lines whose variant vanished from the catalog.
const FallbackProductTitle = "Producto"

// CartLine is the minimal persisted unit of a cart.
type CartLine struct {
	VariantID uuid.UUID `json:"variantId"`
	Quantity  int       `json:"quantity"`
}

// Cart is the server-side cart owned by exactly one user.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItemRow is a persisted line of a server cart.
type CartItemRow struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	VariantID uuid.UUID
	Quantity  int
}

// VariantDetail holds the read-only variant attributes attached during enrichment.
type VariantDetail struct {
	ID        uuid.UUID `json:"id"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Price     float64   `json:"price"`
	SalePrice *float64  `json:"salePrice"`
	Stock     int       `json:"stock"`
}

// ProductSummary holds the read-only product attributes attached during enrichment.
type ProductSummary struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// EnrichedLine is a CartLine plus display attributes. Variant and Product are nil
// when the referenced variant no longer exists.
type EnrichedLine struct {
	VariantID uuid.UUID       `json:"variantId"`
	Quantity  int             `json:"quantity"`
	Variant   *VariantDetail  `json:"variant,omitempty"`
	Product   *ProductSummary `json:"product,omitempty"`
}

// UnitPrice is the sale price when present, the list price otherwise, zero for a missing variant.
func (l EnrichedLine) UnitPrice() float64 {
	if l.Variant == nil {
		return 0
	}
	if l.Variant.SalePrice != nil {
		return *l.Variant.SalePrice
	}

	return l.Variant.Price
}

// Item flattens the line into the shape the storefront pages consume.
func (l EnrichedLine) Item() CartItem {
	item := CartItem{
		VariantID: l.VariantID,
		Title:     FallbackProductTitle,
		Price:     l.UnitPrice(),
		Quantity:  l.Quantity,
	}
	if l.Variant != nil {
		item.Color = l.Variant.Color
		item.Size = l.Variant.Size
	}
	if l.Product != nil {
		item.ProductSlug = l.Product.Slug
		if l.Product.Title != "" {
			item.Title = l.Product.Title
		}
		item.Image = l.Product.ImageURL
	}

	return item
}

// CartItem is the flattened line used by cart, checkout and header badges.
type CartItem struct {
	VariantID   uuid.UUID `json:"variantId"`
	ProductSlug string    `json:"productId"`
	Title       string    `json:"title"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image,omitempty"`
}

// CartSnapshot is the published, read-mostly view of a cart.
// Totals are always derived from Lines and never stored.
type CartSnapshot struct {
	Loading bool
	Lines   []EnrichedLine
}

// Total is sum(quantity * unit price) over all lines.
func (s CartSnapshot) Total() float64 {
	var total float64
	for _, line := range s.Lines {
		total += float64(line.Quantity) * line.UnitPrice()
	}

	return total
}

// ItemCount is sum(quantity) over all lines.
func (s CartSnapshot) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}

	return count
}

// Items returns the flattened lines.
func (s CartSnapshot) Items() []CartItem {
	items := make([]CartItem, 0, len(s.Lines))
	for _, line := range s.Lines {
		items = append(items, line.Item())
	}

	return items
}

// Clone returns a deep copy so callers cannot mutate a published snapshot.
func (s CartSnapshot) Clone() CartSnapshot {
	lines := make([]EnrichedLine, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = line
		if line.Variant != nil {
			variant := *line.Variant
			if variant.SalePrice != nil {
				sale := *variant.SalePrice
				variant.SalePrice = &sale
			}
			lines[i].Variant = &variant
		}
		if line.Product != nil {
			product := *line.Product
			lines[i].Product = &product
		}
	}

	return CartSnapshot{Loading: s.Loading, Lines: lines}
}
