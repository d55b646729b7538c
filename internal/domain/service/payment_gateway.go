// Package service defines domain service interfaces whose implementations
// live in the infrastructure layer.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway is the opaque external payment provider. The core only
// needs a charge/refund call keyed by an order and the returned gateway
// reference; provider-specific details never cross this boundary.
type PaymentGateway interface {
	// Charge attempts to capture the given amount for an order and returns
	// the gateway's payment reference on success.
	Charge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (string, error)

	// Refund reverses a previously captured payment and returns the
	// gateway's refund reference.
	Refund(ctx context.Context, orderID uuid.UUID, paymentRef string, amount decimal.Decimal) (string, error)
}
