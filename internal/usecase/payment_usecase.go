package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessPaymentInput defines a payment attempt against an order.
// Points is only read for the loyalty-points method.
type ProcessPaymentInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Method  entity.PaymentMethod
	Points  int64
}

// PaymentUsecase defines the interface for payment processing. The heavy
// lifting is delegated to the external gateway; the core only records
// attempts and flips the order's payment status on terminal outcomes.
type PaymentUsecase interface {
	// ProcessPayment runs one payment attempt. Card charges go through the
	// gateway, cash completes immediately, loyalty points redeem through
	// the ledger. A successful attempt covering the total marks the order Paid.
	ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*entity.Payment, error)

	// ProcessRefund refunds the completed gateway payments of an order and
	// marks them Refunded.
	ProcessRefund(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// GetOrderPayments lists the payment attempts of an order, oldest first.
	GetOrderPayments(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)
}
