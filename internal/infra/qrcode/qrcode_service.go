package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	itemPathPrefix = "/items/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes encode the item share URL under baseURL.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ItemURL returns the share URL encoded for itemID.
func (s *qrcodeService) ItemURL(itemID uuid.UUID) string {
	return s.baseURL + itemPathPrefix + itemID.String()
}

// GenerateItemQR renders the item share URL as a PNG
func (s *qrcodeService) GenerateItemQR(itemID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ItemURL(itemID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseItemQR extracts the item ID from a scanned share URL
func (s *qrcodeService) ParseItemQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code URL: %w", err)
	}

	dir, last := path.Split(parsed.Path)
	if !strings.HasSuffix(dir, itemPathPrefix) {
		return uuid.Nil, fmt.Errorf("not an item share URL: %s", qrData)
	}

	itemID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse item ID: %w", err)
	}

	return itemID, nil
}
