package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateItemQR generates a PNG QR code pointing at the item's share URL
	GenerateItemQR(itemID uuid.UUID) ([]byte, error)

	// ParseItemQR parses QR code content and returns the item ID
	ParseItemQR(qrData string) (uuid.UUID, error)
}
