// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPaymentNotFound is returned when a payment attempt is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the operations for payment-attempt persistence.
type PaymentRepository interface {
	// Create persists a new payment attempt.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update persists the mutable fields of a payment attempt.
	Update(ctx context.Context, payment *entity.Payment) error

	// FindByOrder retrieves all payment attempts for an order, oldest first.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// SumCompletedLoyaltyAmount sums the currency amounts of completed
	// loyalty-point payments on an order. Used to net out points-funded
	// amounts before accrual.
	SumCompletedLoyaltyAmount(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
}
