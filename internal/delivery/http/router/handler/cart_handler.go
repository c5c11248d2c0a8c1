package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler exposes the cart of the requesting device.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddItemRequest adds units of a variant; quantity defaults to 1.
type AddItemRequest struct {
	VariantID string `json:"variantId" validate:"required,uuid"`
	Quantity  *int   `json:"quantity" validate:"omitempty,lte=999"`
}

// UpdateQuantityRequest sets a line's quantity; zero or less removes it.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"lte=999"`
}

// cartOwner identifies the requesting device and, when signed in, its user.
func cartOwner(c echo.Context) (usecase.CartOwner, bool) {
	deviceID, ok := middleware.GetDeviceID(c)
	if !ok {
		return usecase.CartOwner{}, false
	}

	owner := usecase.CartOwner{DeviceID: deviceID}
	if userID, ok := middleware.GetUserID(c); ok {
		owner.UserID = &userID
	}

	return owner, true
}

func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	output, err := h.uc.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(output), "")
}

func (h *CartHandler) AddItem(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	output, err := h.uc.AddItem(c.Request().Context(), owner, uuid.MustParse(req.VariantID), quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(output), "")
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.UpdateQuantity(c.Request().Context(), owner, variantID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(output), "")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	output, err := h.uc.RemoveItem(c.Request().Context(), owner, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(output), "")
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := cartOwner(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
	}

	output, err := h.uc.ClearCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(output), "Cart cleared")
}
