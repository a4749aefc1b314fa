package renderer

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode returns text as a QR code drawn with half block characters.
func QRCode(text string) (string, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("error encoding %q as a QR code: %w", text, err)
	}
	return q.ToSmallString(false), nil
}
