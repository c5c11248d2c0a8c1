package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutSummaryInput identifies the cart to price and an optional coupon.
type CheckoutSummaryInput struct {
	DeviceID uuid.UUID
	UserID   uuid.UUID
	Coupon   string
}

// CheckoutSummaryOutput is the order summary shown before payment.
type CheckoutSummaryOutput struct {
	Cart            *CartOutput
	Subtotal        float64
	Coupon          string
	DiscountPercent int
	Discount        float64
	GrandTotal      float64
}

// CheckoutUsecase prices the signed-in user's cart.
type CheckoutUsecase interface {
	Summary(ctx context.Context, input *CheckoutSummaryInput) (*CheckoutSummaryOutput, error)
}
