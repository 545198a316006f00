package ticketdoc

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRPNG encodes text as a QR code PNG. Size is both width and height
// in pixels; 300 scans reliably from a phone screen.
func QRPNG(text string, size int) ([]byte, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR to PNG: %w", err)
	}
	return png, nil
}

// QRDataURI returns the QR code as a data URI usable directly in an
// <img> tag (confirmation emails embed it this way).
func QRDataURI(text string, size int) (string, error) {
	png, err := QRPNG(text, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
