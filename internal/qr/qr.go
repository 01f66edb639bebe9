// Package qr renders the QR code that links to a listing's detail view.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered QR code size in pixels.
const DefaultSize = 200

// ItemURL returns the deep link a listing's QR code encodes. Opening it with
// the `item` query parameter set resolves to that item's detail view.
func ItemURL(base string, id int64) string {
	return fmt.Sprintf("%s/?item=%d", strings.TrimRight(base, "/"), id)
}

// ItemPNG renders a PNG QR code for a listing's deep link. High error
// correction, so printed codes survive wear.
func ItemPNG(base string, id int64, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := qrcode.Encode(ItemURL(base, id), qrcode.High, size)
	if err != nil {
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}
	return data, nil
}
