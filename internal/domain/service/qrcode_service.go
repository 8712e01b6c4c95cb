package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing.
type QRCodeService interface {
	// GenerateListingQR generates a QR code that encodes a shareable
	// reference to a property listing.
	GenerateListingQR(propertyID uuid.UUID) ([]byte, error)

	// ParseListingQR parses QR code data and returns the property ID.
	ParseListingQR(qrData string) (uuid.UUID, error)
}
