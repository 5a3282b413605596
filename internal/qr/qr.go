// Package qr renders scannable check-in codes.
package qr

import qrcode "github.com/skip2/go-qrcode"

const imageSize = 256 // pixels, square

// Render encodes payload into a PNG image.
func Render(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Low, imageSize)
}
