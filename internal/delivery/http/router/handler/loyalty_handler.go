package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/response"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// LoyaltyHandler holds dependencies for loyalty-related handlers
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// RedeemRequest represents the request body for redeeming points
type RedeemRequest struct {
	Points  int64      `json:"points" validate:"required,min=1"`
	OrderID *uuid.UUID `json:"order_id,omitempty"`
}

// AwardRequest represents the request body for a staff-initiated award
type AwardRequest struct {
	UserID      uuid.UUID  `json:"user_id" validate:"required"`
	Points      int64      `json:"points" validate:"required,min=1"`
	Description string     `json:"description" validate:"required"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
}

// GetBalance handles retrieving the authenticated user's point balance
func (h *LoyaltyHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.loyaltyUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance, "Balance retrieved successfully")
}

// GetTransactions handles retrieving the authenticated user's ledger history
func (h *LoyaltyHandler) GetTransactions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	transactions, err := h.loyaltyUC.GetTransactions(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions, "Transactions retrieved successfully")
}

// RedeemPoints handles exchanging points for a discount
func (h *LoyaltyHandler) RedeemPoints(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.loyaltyUC.RedeemPoints(c.Request().Context(), userID, req.Points, req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Points redeemed successfully")
}

// AwardPoints handles a staff-initiated point award
func (h *LoyaltyHandler) AwardPoints(c echo.Context) error {
	var req AwardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid award input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	transaction, err := h.loyaltyUC.AwardPoints(c.Request().Context(), usecase.AwardInput{
		UserID:      req.UserID,
		Points:      req.Points,
		Description: req.Description,
		OrderID:     req.OrderID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction, "Points awarded successfully")
}
