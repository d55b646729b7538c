// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	LoyaltyHandler *handler.LoyaltyHandler
	MenuHandler    *handler.MenuHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	loyaltyHandler *handler.LoyaltyHandler
	menuHandler    *handler.MenuHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		loyaltyHandler: params.LoyaltyHandler,
		menuHandler:    params.MenuHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public menu routes
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListMenu)
		menuGroup.GET("/:productId", r.menuHandler.GetProduct)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.GetUserOrders)
		orderGroup.GET("/:orderId", r.orderHandler.GetOrder)
		orderGroup.POST("/:orderId/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:orderId/pickup-qr", r.orderHandler.GetPickupQR)
		orderGroup.POST("/:orderId/payments", r.paymentHandler.ProcessPayment)
		orderGroup.GET("/:orderId/payments", r.paymentHandler.GetOrderPayments)
	}

	// Loyalty routes that require authentication
	loyaltyGroup := e.Group("/loyalty")
	loyaltyGroup.Use(r.authMiddleware.Authenticate)
	{
		loyaltyGroup.GET("/balance", r.loyaltyHandler.GetBalance)
		loyaltyGroup.GET("/transactions", r.loyaltyHandler.GetTransactions)
		loyaltyGroup.POST("/redeem", r.loyaltyHandler.RedeemPoints)
	}

	// Staff routes that require authentication and "staff" role
	staffGroup := e.Group("/staff")
	staffGroup.Use(r.authMiddleware.Authenticate)         // First, check if logged in
	staffGroup.Use(r.authMiddleware.RequireRole("staff")) // Then, check for the role
	{
		staffGroup.PATCH("/orders/:orderId/status", r.orderHandler.UpdateOrderStatus)
		staffGroup.POST("/orders/:orderId/refund", r.paymentHandler.ProcessRefund)
		staffGroup.POST("/loyalty/award", r.loyaltyHandler.AwardPoints)
	}
}
