package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	"storefront/internal/usecase/cartengine"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService prices the cart bound to the signed-in user.
type checkoutService struct {
	carts   *cartService
	coupons map[string]int
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Registry *cartengine.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	coupons := make(map[string]int)
	if params.Config != nil && params.Config.Checkout != nil {
		for code, pct := range params.Config.Checkout.Coupons {
			coupons[normalizeCoupon(code)] = pct
		}
	}

	return &checkoutService{
		carts: &cartService{
			registry: params.Registry,
			logger:   params.Logger,
		},
		coupons: coupons,
	}
}

// Summary returns subtotal, coupon discount and grand total of the user's cart.
func (srv *checkoutService) Summary(ctx context.Context, input *usecase.CheckoutSummaryInput) (*usecase.CheckoutSummaryOutput, error) {
	// Pricing follows the signed-in user and re-reads their server cart.
	owner := usecase.CartOwner{DeviceID: input.DeviceID, UserID: &input.UserID}
	snapshot, state := srv.carts.caller(owner).Load(ctx)
	if state != cartengine.StateBound {
		return nil, errors.Wrap(domainerrors.ErrCartSettling, "cart is not bound to the user yet")
	}

	cart := usecase.NewCartOutput(snapshot)
	if cart.ItemCount == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	output := &usecase.CheckoutSummaryOutput{
		Cart:       cart,
		Subtotal:   cart.Total,
		GrandTotal: cart.Total,
	}

	code := normalizeCoupon(input.Coupon)
	if code == "" {
		return output, nil
	}

	pct, ok := srv.coupons[code]
	if !ok {
		srv.carts.log(ctx).Info("Rejected coupon", slog.String("coupon", code))

		return nil, domainerrors.ErrInvalidCoupon.WithDetails(code)
	}

	output.Coupon = code
	output.DiscountPercent = pct
	output.Discount = math.Round(cart.Total * float64(pct) / 100)
	output.GrandTotal = math.Max(cart.Total-output.Discount, 0)

	return output, nil
}

func normalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
