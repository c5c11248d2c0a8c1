package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler prices the signed-in user's cart.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// CheckoutSummaryRequest optionally applies a coupon.
type CheckoutSummaryRequest struct {
	Coupon string `json:"coupon" validate:"max=32"`
}

func (h *CheckoutHandler) Summary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	var req CheckoutSummaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.Summary(c.Request().Context(), &usecase.CheckoutSummaryInput{
		DeviceID: deviceID,
		UserID:   userID,
		Coupon:   req.Coupon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CheckoutSummaryResponse{
		Cart:            newCartResponse(output.Cart),
		Subtotal:        output.Subtotal,
		Coupon:          output.Coupon,
		DiscountPercent: output.DiscountPercent,
		Discount:        output.Discount,
		GrandTotal:      output.GrandTotal,
	}, "")
}
