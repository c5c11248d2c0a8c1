package handler

import (
	"net/http"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authenticated runs next behind the bearer check for userID.
func authenticated(t *testing.T, c echo.Context, userID uuid.UUID, next echo.HandlerFunc) error {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: userID}, nil)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer token")

	return middleware.NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
}

func TestCheckoutHandler_Summary(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc)
	deviceID, userID := uuid.New(), uuid.New()

	c, rec := newTestContext(http.MethodPost, "/checkout/summary", `{"coupon":"one10"}`)
	middleware.SetDeviceID(c, deviceID)
	uc.EXPECT().
		Summary(mock.Anything, &usecase.CheckoutSummaryInput{DeviceID: deviceID, UserID: userID, Coupon: "one10"}).
		Return(&usecase.CheckoutSummaryOutput{
			Cart:            &usecase.CartOutput{ItemCount: 3, Total: 210},
			Subtotal:        210,
			Coupon:          "ONE10",
			DiscountPercent: 10,
			Discount:        21,
			GrandTotal:      189,
		}, nil)

	require.NoError(t, authenticated(t, c, userID, h.Summary))

	var summary CheckoutSummaryResponse
	decodeEnvelope(t, rec, &summary)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ONE10", summary.Coupon)
	assert.InDelta(t, 189.0, summary.GrandTotal, 0.001)
	assert.Equal(t, 3, summary.Cart.ItemCount)
}

func TestCheckoutHandler_Summary_RequiresUser(t *testing.T) {
	h := NewCheckoutHandler(mockUsecase.NewMockCheckoutUsecase(t))

	c, rec := newTestContext(http.MethodPost, "/checkout/summary", `{}`)
	middleware.SetDeviceID(c, uuid.New())

	require.NoError(t, h.Summary(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
