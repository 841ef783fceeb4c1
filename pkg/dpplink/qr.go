package dpplink

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrImageSize is the rendered QR edge length in pixels. Sized for 300 dpi
// print at the label's QR block dimensions.
const qrImageSize = 256

// GenerateQRDataURL renders the passport URL as a QR code and returns it as
// an embeddable PNG data URI. This is the only failing step of the label
// pipeline; callers degrade gracefully by assembling with an empty data URL
// and letting the validator flag the gap.
func GenerateQRDataURL(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("url is required")
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
