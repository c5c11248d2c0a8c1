package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshot_CloneIsIndependent(t *testing.T) {
	sale := 80.0
	published := CartSnapshot{Lines: []EnrichedLine{
		{
			VariantID: uuid.New(),
			Quantity:  2,
			Variant:   &VariantDetail{Price: 100, SalePrice: &sale},
			Product:   &ProductSummary{Slug: "hoodie", Title: "Hoodie"},
		},
		{VariantID: uuid.New(), Quantity: 1},
	}}

	clone := published.Clone()
	clone.Lines[0].Quantity = 9
	clone.Lines[0].Variant.Price = 1
	*clone.Lines[0].Variant.SalePrice = 1
	clone.Lines[0].Product.Title = "Changed"

	require.Len(t, clone.Lines, 2)
	assert.Nil(t, clone.Lines[1].Variant)
	assert.Equal(t, 2, published.Lines[0].Quantity)
	assert.InDelta(t, 100.0, published.Lines[0].Variant.Price, 0.001)
	assert.InDelta(t, 80.0, *published.Lines[0].Variant.SalePrice, 0.001)
	assert.Equal(t, "Hoodie", published.Lines[0].Product.Title)
	assert.InDelta(t, 160.0, published.Total(), 0.001)
}
