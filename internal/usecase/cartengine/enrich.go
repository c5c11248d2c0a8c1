package cartengine

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// enrich attaches variant and product details to lines with one catalog call.
// Lines whose variant is gone keep nil details instead of being dropped.
func (e *Engine) enrich(ctx context.Context, lines []entity.CartLine) ([]entity.EnrichedLine, error) {
	enriched := make([]entity.EnrichedLine, 0, len(lines))
	if len(lines) == 0 {
		return enriched, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.VariantID]; ok {
			continue
		}
		seen[line.VariantID] = struct{}{}
		ids = append(ids, line.VariantID)
	}

	var variants []*entity.Variant
	if err := e.call(ctx, func(ctx context.Context) error {
		var err error
		variants, err = e.deps.Catalog.FetchVariantsWithProduct(ctx, ids)

		return err
	}); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Variant, len(variants))
	for _, variant := range variants {
		if variant != nil {
			byID[variant.ID] = variant
		}
	}

	for _, line := range lines {
		enriched = append(enriched, enrichLine(line, byID[line.VariantID]))
	}

	return enriched, nil
}

func enrichLine(line entity.CartLine, variant *entity.Variant) entity.EnrichedLine {
	out := entity.EnrichedLine{VariantID: line.VariantID, Quantity: line.Quantity}
	if variant == nil {
		return out
	}

	out.Variant = &entity.VariantDetail{
		ID:        variant.ID,
		Color:     variant.Color,
		Size:      variant.Size,
		Price:     variant.Price,
		SalePrice: variant.SalePrice,
		Stock:     variant.Stock,
	}
	if variant.Product != nil {
		out.Product = &entity.ProductSummary{
			Slug:     variant.Product.Slug,
			Title:    variant.Product.Title,
			ImageURL: variant.Product.PrimaryImageURL(),
		}
	}

	return out
}
