// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the kitchen-side lifecycle of an order.
// It is a closed set; every status change must pass CanTransitionTo.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Placed, waiting for the kitchen to accept.
	OrderStatusPreparing OrderStatus = "preparing" // The kitchen is working on it.
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup at the counter.
	OrderStatusCompleted OrderStatus = "completed" // Picked up; terminal.
	OrderStatusCancelled OrderStatus = "cancelled" // Abandoned before completion; terminal.
)

// Valid reports whether s is a member of the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo is the exhaustive transition table. A self-transition is
// not part of the table; callers treat it as an idempotent no-op.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusPreparing || target == OrderStatusCancelled
	case OrderStatusPreparing:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted, OrderStatusCancelled:
		return false
	}

	return false
}

// PaymentStatus tracks money independently of kitchen progress.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is the aggregate root for a single food order.
// TotalAmount is snapshotted at placement time from the line subtotals and is
// never recomputed from live product prices.
type Order struct {
	ID            uuid.UUID       `json:"id"`             // The Global Unique Identifier (GUID) for the order.
	OrderNumber   string          `json:"order_number"`   // Human-readable unique number, e.g. ORD-20260901-0042.
	UserID        uuid.UUID       `json:"user_id"`        // The ID of the user who placed the order.
	Lines         []*OrderLine    `json:"lines"`          // The order lines, owned by this order.
	TotalAmount   decimal.Decimal `json:"total_amount"`   // Sum of line subtotals at placement time.
	Status        OrderStatus     `json:"status"`         // Kitchen lifecycle status.
	PaymentStatus PaymentStatus   `json:"payment_status"` // Money status, independent of Status.
	PaymentMethod string          `json:"payment_method"` // Optional payment method tag chosen at placement.
	Notes         string          `json:"notes"`          // Optional free-text notes; cancellation reasons append here.
	CreatedAt     time.Time       `json:"created_at"`     // Timestamp of when the order was placed.
	UpdatedAt     time.Time       `json:"updated_at"`     // Timestamp of the last mutation.
	CompletedAt   *time.Time      `json:"completed_at"`   // Set exactly once, on first entry into Completed.
}

// OrderLine is owned by exactly one order and is immutable after creation.
// UnitPrice snapshots the product price at placement time so later catalog
// price changes do not affect existing orders.
type OrderLine struct {
	ID           uuid.UUID       `json:"id"`           // The Global Unique Identifier (GUID) for the line.
	OrderID      uuid.UUID       `json:"order_id"`     // The ID of the owning order.
	ProductID    uuid.UUID       `json:"product_id"`   // Weak reference to the catalog product.
	ProductName  string          `json:"product_name"` // Denormalized product name at order time.
	Quantity     int             `json:"quantity"`     // Positive, bounded (see config.Order.MaxQuantity).
	UnitPrice    decimal.Decimal `json:"unit_price"`   // Product price snapshot at order time.
	Subtotal     decimal.Decimal `json:"subtotal"`     // Quantity x UnitPrice.
	Instructions string          `json:"instructions"` // Optional special instructions, e.g. "no onions".
}
