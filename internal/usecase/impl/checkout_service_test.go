package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bindPricedCart binds a cart holding 2 x (100, sale 80) and 1 x 50, worth 210,
// and expects the re-read the summary makes of it.
func bindPricedCart(ctx context.Context, fx *cartFixture, deviceID, userID uuid.UUID) {
	hoodie, beanie := uuid.New(), uuid.New()
	sale := 80.0
	lines := []entity.CartLine{
		{VariantID: hoodie, Quantity: 2},
		{VariantID: beanie, Quantity: 1},
	}

	fx.catalog.EXPECT().
		FetchVariantsWithProduct(mock.Anything, []uuid.UUID{hoodie, beanie}).
		Return([]*entity.Variant{priced(hoodie, 100, &sale, "hoodie"), priced(beanie, 50, nil, "beanie")}, nil).
		Twice()
	cartID := fx.bindUser(ctx, deviceID, userID, lines)
	fx.store.EXPECT().ListCartItems(mock.Anything, cartID).Return(lines, nil).Once()
}

func TestCheckoutService_Summary(t *testing.T) {
	tests := []struct {
		name         string
		coupon       string
		wantCoupon   string
		wantDiscount float64
		wantTotal    float64
	}{
		{name: "no coupon", wantTotal: 210},
		{name: "coupon is normalized", coupon: " one10 ", wantCoupon: "ONE10", wantDiscount: 21, wantTotal: 189},
		{name: "discount never exceeds the subtotal", coupon: "FREE", wantCoupon: "FREE", wantDiscount: 315, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newCartFixture(t)
			ctx := context.Background()
			deviceID, userID := uuid.New(), uuid.New()
			bindPricedCart(ctx, fx, deviceID, userID)

			svc := newCheckoutService(fx, map[string]int{"one10": 10, "FREE": 150})

			output, err := svc.Summary(ctx, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: userID, Coupon: tt.coupon})

			require.NoError(t, err)
			assert.InDelta(t, 210.0, output.Subtotal, 0.001)
			assert.Equal(t, tt.wantCoupon, output.Coupon)
			assert.InDelta(t, tt.wantDiscount, output.Discount, 0.001)
			assert.InDelta(t, tt.wantTotal, output.GrandTotal, 0.001)
			assert.Equal(t, 3, output.Cart.ItemCount)
		})
	}
}

func TestCheckoutService_UnknownCoupon(t *testing.T) {
	fx := newCartFixture(t)
	ctx := context.Background()
	deviceID, userID := uuid.New(), uuid.New()
	bindPricedCart(ctx, fx, deviceID, userID)

	svc := newCheckoutService(fx, map[string]int{"ONE10": 10})

	output, err := svc.Summary(ctx, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: userID, Coupon: "NOPE"})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_COUPON", appErr.ErrorCode())
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	fx := newCartFixture(t)
	ctx := context.Background()
	deviceID, userID := uuid.New(), uuid.New()
	cartID := fx.bindUser(ctx, deviceID, userID, []entity.CartLine{})
	fx.store.EXPECT().ListCartItems(mock.Anything, cartID).Return([]entity.CartLine{}, nil).Once()

	output, err := newCheckoutService(fx, nil).Summary(ctx, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: userID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestCheckoutService_CartStoreUnavailable(t *testing.T) {
	fx := newCartFixture(t)
	ctx := context.Background()
	deviceID, userID := uuid.New(), uuid.New()

	fx.guest.EXPECT().Load(mock.Anything, deviceID).Return([]entity.CartLine{}, nil).Once()
	fx.store.EXPECT().FindCartByUser(mock.Anything, userID).Return(nil, errors.New("connection refused")).Once()

	output, err := newCheckoutService(fx, nil).Summary(ctx, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: userID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCartSettling))
}

func TestCheckoutService_PricesCallersCartOnSharedDevice(t *testing.T) {
	fx := newCartFixture(t)
	ctx := context.Background()
	deviceID := uuid.New()
	previous, caller := uuid.New(), uuid.New()
	left, own := uuid.New(), uuid.New()

	fx.catalog.EXPECT().
		FetchVariantsWithProduct(mock.Anything, []uuid.UUID{left}).
		Return([]*entity.Variant{priced(left, 100, nil, "jacket")}, nil).
		Once()
	fx.bindUser(ctx, deviceID, previous, []entity.CartLine{{VariantID: left, Quantity: 5}})

	fx.expectBind(deviceID, caller, []entity.CartLine{{VariantID: own, Quantity: 1}})
	fx.catalog.EXPECT().
		FetchVariantsWithProduct(mock.Anything, []uuid.UUID{own}).
		Return([]*entity.Variant{priced(own, 50, nil, "beanie")}, nil).
		Once()

	output, err := newCheckoutService(fx, nil).Summary(ctx, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: caller})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Cart.ItemCount)
	assert.InDelta(t, 50.0, output.Subtotal, 0.001)
	require.Len(t, output.Cart.Items, 1)
	assert.Equal(t, own, output.Cart.Items[0].VariantID)
}
