package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR("ORD-20260901-0042")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	t.Run("valid payload", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			OrderNumber: "ORD-20260901-0042",
			Type:        "pickup",
		})
		require.NoError(t, err)

		orderNumber, err := service.ParsePickupQR(string(payload))
		require.NoError(t, err)
		assert.Equal(t, "ORD-20260901-0042", orderNumber)
	})

	t.Run("wrong type", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			OrderNumber: "ORD-20260901-0042",
			Type:        "subscription",
		})
		require.NoError(t, err)

		_, err = service.ParsePickupQR(string(payload))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid QR code type")
	})

	t.Run("missing order number", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{Type: "pickup"})
		require.NoError(t, err)

		_, err = service.ParsePickupQR(string(payload))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := service.ParsePickupQR("not json")
		assert.Error(t, err)
	})

	t.Run("round trip through generation data", func(t *testing.T) {
		qrBytes, err := service.GeneratePickupQR("ORD-20260901-7777")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	})
}
