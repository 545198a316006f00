package ticketdoc

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestQRPNG(t *testing.T) {
	png, err := QRPNG("TKT-ABC123-XY9Z", 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestQRDataURI(t *testing.T) {
	uri, err := QRDataURI("TKT-ABC123-XY9Z", 128)
	require.NoError(t, err)
	assert.Contains(t, uri, "data:image/png;base64,")
}

func TestTicketPDF(t *testing.T) {
	qr, err := QRPNG("TKT-ABC123-XY9Z", 256)
	require.NoError(t, err)

	pdf, err := TicketPDF(TicketData{
		TicketNumber: "TKT-ABC123-XY9Z",
		ShowTitle:    "Alien",
		Showtime:     time.Date(2026, 9, 12, 20, 30, 0, 0, time.UTC),
		SeatNumbers:  []int{4, 5, 6},
		HolderName:   "Ada Lovelace",
		HolderEmail:  "ada@example.com",
		QRPNGBytes:   qr,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestTicketPDFWithoutQR(t *testing.T) {
	pdf, err := TicketPDF(TicketData{
		TicketNumber: "TKT-ABC123-XY9Z",
		ShowTitle:    "Alien",
		Showtime:     time.Now(),
		SeatNumbers:  []int{1},
		HolderName:   "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
