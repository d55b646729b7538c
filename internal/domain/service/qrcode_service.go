package service

// QRCodeService defines the interface for pickup QR code generation and parsing.
type QRCodeService interface {
	// GeneratePickupQR generates a QR code image for an order pickup.
	GeneratePickupQR(orderNumber string) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the order number.
	ParsePickupQR(qrData string) (string, error)
}
