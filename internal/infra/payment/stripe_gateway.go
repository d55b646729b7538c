// Package payment implements the payment gateway port against Stripe.
package payment

import (
	"context"

	"canteen/config"
	"canteen/internal/domain/service"
	"canteen/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/fx"
)

type stripeGateway struct {
	api      *client.API
	currency string
}

// Params defines the dependencies for the Stripe gateway.
type Params struct {
	fx.In

	Config *config.Config
}

// NewStripeGateway creates a PaymentGateway backed by the Stripe API.
func NewStripeGateway(params Params) (service.PaymentGateway, error) {
	if params.Config.Stripe == nil || params.Config.Stripe.APIKey == "" {
		return nil, errors.New("stripe api key is required")
	}

	currency := params.Config.Stripe.Currency
	if currency == "" {
		currency = "twd"
	}

	return &stripeGateway{
		api:      client.New(params.Config.Stripe.APIKey, nil),
		currency: currency,
	}, nil
}

// Charge creates and confirms a payment intent for the order total.
// The returned reference is the Stripe payment intent ID.
func (g *stripeGateway) Charge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (string, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intentParams.Context = ctx
	intentParams.AddMetadata("order_id", orderID.String())
	intentParams.SetIdempotencyKey("charge-" + orderID.String())

	intent, err := g.api.PaymentIntents.New(intentParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to create payment intent")
	}

	return intent.ID, nil
}

// Refund refunds a previously completed payment intent.
func (g *stripeGateway) Refund(ctx context.Context, orderID uuid.UUID, paymentRef string, amount decimal.Decimal) (string, error) {
	refundParams := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentRef),
		Amount:        stripe.Int64(toMinorUnits(amount)),
	}
	refundParams.Context = ctx
	refundParams.AddMetadata("order_id", orderID.String())

	refund, err := g.api.Refunds.New(refundParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to create refund")
	}

	return refund.ID, nil
}

// toMinorUnits converts a currency amount to the smallest unit Stripe expects.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
