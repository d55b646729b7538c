package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/http/response"
	"canteen/internal/domain/entity"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler holds dependencies for menu-related handlers
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// ListMenu handles retrieving the available menu, optionally by category
func (h *MenuHandler) ListMenu(c echo.Context) error {
	var category *entity.ProductCategory
	if raw := c.QueryParam("category"); raw != "" {
		parsed := entity.ProductCategory(raw)
		category = &parsed
	}

	products, err := h.menuUC.ListMenu(c.Request().Context(), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Menu retrieved successfully")
}

// GetProduct handles retrieving a single product
func (h *MenuHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.menuUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}
