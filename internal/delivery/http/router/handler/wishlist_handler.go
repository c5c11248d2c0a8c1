package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WishlistHandler manages the signed-in user's wishlist.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// WishlistRequest names the product to save.
type WishlistRequest struct {
	Slug string `json:"slug" validate:"required,max=200"`
}

func (h *WishlistHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	products, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

func (h *WishlistHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Add(c.Request().Context(), userID, req.Slug); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Saved to wishlist")
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	if err := h.uc.Remove(c.Request().Context(), userID, c.Param("slug")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}
