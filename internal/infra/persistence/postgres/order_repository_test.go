package postgres

import (
	"testing"
	"time"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMappers_RoundTrip(t *testing.T) {
	completedAt := time.Now()
	orderID := uuid.New()
	order := &entity.Order{
		ID:          orderID,
		OrderNumber: "ORD-20260901-0042",
		UserID:      uuid.New(),
		Lines: []*entity.OrderLine{
			{
				ID:           uuid.New(),
				OrderID:      orderID,
				ProductID:    uuid.New(),
				ProductName:  "Beef Noodles",
				Quantity:     2,
				UnitPrice:    decimal.NewFromInt(120),
				Subtotal:     decimal.NewFromInt(240),
				Instructions: "less spicy, no onions",
			},
			{
				ID:          uuid.New(),
				OrderID:     orderID,
				ProductID:   uuid.New(),
				ProductName: "Milk Tea",
				Quantity:    1,
				UnitPrice:   decimal.NewFromFloat(35.5),
				Subtotal:    decimal.NewFromFloat(35.5),
			},
		},
		TotalAmount:   decimal.NewFromFloat(275.5),
		Status:        entity.OrderStatusCompleted,
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: string(entity.PaymentMethodCard),
		Notes:         "table 4",
		CreatedAt:     time.Now().Add(-time.Hour),
		UpdatedAt:     time.Now(),
		CompletedAt:   &completedAt,
	}

	got := toOrderDomain(fromOrderDomain(order))

	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	assert.Equal(t, order.UserID, got.UserID)
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))
	assert.Equal(t, order.Status, got.Status)
	assert.Equal(t, order.PaymentStatus, got.PaymentStatus)
	assert.Equal(t, order.PaymentMethod, got.PaymentMethod)
	assert.Equal(t, order.Notes, got.Notes)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, completedAt, *got.CompletedAt)

	require.Len(t, got.Lines, 2)
	for i, line := range order.Lines {
		assert.Equal(t, line.ID, got.Lines[i].ID)
		assert.Equal(t, line.OrderID, got.Lines[i].OrderID)
		assert.Equal(t, line.ProductID, got.Lines[i].ProductID)
		assert.Equal(t, line.ProductName, got.Lines[i].ProductName)
		assert.Equal(t, line.Quantity, got.Lines[i].Quantity)
		assert.True(t, got.Lines[i].UnitPrice.Equal(line.UnitPrice))
		assert.True(t, got.Lines[i].Subtotal.Equal(line.Subtotal))
		assert.Equal(t, line.Instructions, got.Lines[i].Instructions)
	}
}

func TestOrderMappers_Nil(t *testing.T) {
	assert.Nil(t, toOrderDomain(nil))
	assert.Nil(t, fromOrderDomain(nil))
}
