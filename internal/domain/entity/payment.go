// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment attempt is funded.
type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodLoyaltyPoints PaymentMethod = "loyalty_points"
	PaymentMethodMixed         PaymentMethod = "mixed"
)

// Valid reports whether m is a member of the closed method set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodLoyaltyPoints, PaymentMethodMixed:
		return true
	}

	return false
}

// PaymentAttemptStatus is the lifecycle of a single payment attempt.
type PaymentAttemptStatus string

const (
	PaymentAttemptPending    PaymentAttemptStatus = "pending"
	PaymentAttemptProcessing PaymentAttemptStatus = "processing"
	PaymentAttemptCompleted  PaymentAttemptStatus = "completed"
	PaymentAttemptFailed     PaymentAttemptStatus = "failed"
	PaymentAttemptRefunded   PaymentAttemptStatus = "refunded"
)

// Payment is one payment attempt against an order. Multiple attempts per
// order are legal, e.g. a failed card attempt followed by a cash payment.
// The gateway-specific details stay opaque behind the reference ids.
type Payment struct {
	ID                uuid.UUID            `json:"id"`                  // The Global Unique Identifier (GUID) for the attempt.
	OrderID           uuid.UUID            `json:"order_id"`            // The ID of the order being paid.
	Amount            decimal.Decimal      `json:"amount"`              // Amount of this attempt in currency units.
	Method            PaymentMethod        `json:"method"`              // How the attempt is funded.
	Status            PaymentAttemptStatus `json:"status"`              // Lifecycle status of the attempt.
	GatewayPaymentID  string               `json:"gateway_payment_id"`  // Opaque gateway charge reference.
	GatewayRefundID   string               `json:"gateway_refund_id"`   // Opaque gateway refund reference.
	FailureReason     string               `json:"failure_reason"`      // Why the attempt failed, if it did.
	LoyaltyPointsUsed int64                `json:"loyalty_points_used"` // Points redeemed into this attempt, if any.
	CreatedAt         time.Time            `json:"created_at"`          // Timestamp of when the attempt was created.
	UpdatedAt         time.Time            `json:"updated_at"`          // Timestamp of the last modification.
}
