package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler backs the admin shell.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// UpdateRoleRequest sets a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer admin super_admin"`
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users := make([]*UserResponse, 0, len(output.Users))
	for _, user := range output.Users {
		users = append(users, newUserResponse(user))
	}

	return response.Success(c, http.StatusOK, &PageResponse{
		Items: users,
		Total: output.Total,
		Page:  output.Page,
		Limit: output.Limit,
	}, "")
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.uc.UpdateUserRole(c.Request().Context(), actorID, userID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Role updated")
}
