// Package qrimage renders WhatsApp pairing codes as data URIs so any
// observer (browser, TUI) can display them without another round trip.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// DataURI encodes the given pairing code as a PNG QR image wrapped in a
// base64 data URI. size is the image edge in pixels; values < 1 fall back
// to DefaultSize.
func DataURI(code string, size int) (string, error) {
	if size < 1 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
