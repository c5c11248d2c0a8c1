package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addItemRequest struct {
	VariantID string `validate:"required,uuid"`
	Quantity  int    `validate:"gte=1,lte=99"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&addItemRequest{VariantID: "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", Quantity: 2}))

	err := v.Validate(&addItemRequest{VariantID: "nope", Quantity: 0})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "VariantID failed uuid")
	assert.Contains(t, appErr.Details(), "Quantity failed gte=1")
}
