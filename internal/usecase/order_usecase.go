// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID    uuid.UUID
	Quantity     int
	Instructions string
}

// PlaceOrderInput defines the data required to place a new order.
type PlaceOrderInput struct {
	UserID        uuid.UUID
	Items         []OrderItemInput
	PaymentMethod string
	Notes         string
}

// OrderUsecase defines the interface for order lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OrderUsecase interface {
	// PlaceOrder validates the items against the catalog, snapshots prices
	// and persists a new Pending order with its lines.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)

	// UpdateOrderStatus applies one transition of the order status table.
	// A self-transition is an accepted no-op. First entry into Completed
	// triggers the loyalty accrual exactly once.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error)

	// CancelOrder is the user-facing cancellation: it additionally enforces
	// ownership and rejects finalized orders with distinct errors before the
	// generic transition check.
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID, reason string) (*entity.Order, error)

	// GetOrder retrieves a single order with its lines.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GetUserOrders retrieves a page of a user's orders, newest first.
	GetUserOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Order, error)
}
