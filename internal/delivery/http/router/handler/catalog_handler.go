package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProductsQuery are the query parameters of the product listing.
type ListProductsQuery struct {
	Limit      int    `query:"limit" validate:"gte=0,lte=100"`
	Page       int    `query:"page" validate:"gte=0"`
	Collection string `query:"collection"`
	Category   string `query:"category"`
	Search     string `query:"q" validate:"max=100"`
}

func (h *CatalogHandler) ListCollections(c echo.Context) error {
	collections, err := h.uc.ListCollections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collections, "")
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProducts returns one page of active products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query ListProductsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.ListProducts(c.Request().Context(), entity.ProductFilter{
		Limit:          query.Limit,
		Page:           query.Page,
		CollectionSlug: query.Collection,
		CategorySlug:   query.Category,
		Search:         query.Search,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PageResponse{
		Items: output.Products,
		Total: output.Total,
		Page:  output.Page,
		Limit: output.Limit,
	}, "")
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "")
}
