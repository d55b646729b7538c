package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod_Valid(t *testing.T) {
	for _, method := range []PaymentMethod{
		PaymentMethodCard, PaymentMethodCash, PaymentMethodLoyaltyPoints, PaymentMethodMixed,
	} {
		assert.True(t, method.Valid(), "method %s", method)
	}

	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
