package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateTrackingQR encodes the tracking page link for an order
	GenerateTrackingQR(friendlyID string) ([]byte, error)

	// GeneratePNG encodes arbitrary content, used for authenticator enrollment
	GeneratePNG(content string) ([]byte, error)
}
