package ticketdoc

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// TicketData carries everything printed on a ticket
type TicketData struct {
	TicketNumber string
	ShowTitle    string
	Showtime     time.Time
	SeatNumbers  []int
	HolderName   string
	HolderEmail  string
	QRPNGBytes   []byte
}

// TicketPDF renders a printable A5 ticket with the booking details and
// an embedded QR code of the ticket number.
func TicketPDF(data TicketData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Cinebook Ticket", "", 1, "C", false, 0, "")

	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(12, 28, 198, 28)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, data.ShowTitle, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Ticket", data.TicketNumber},
		{"Showtime", data.Showtime.Format("Mon, 02 Jan 2006 15:04")},
		{"Seats", joinSeatNumbers(data.SeatNumbers)},
		{"Holder", data.HolderName},
		{"Email", data.HolderEmail},
	}
	for _, row := range rows {
		pdf.CellFormat(30, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}

	if len(data.QRPNGBytes) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("ticket-qr", opts, bytes.NewReader(data.QRPNGBytes))
		pdf.ImageOptions("ticket-qr", 155, 34, 36, 36, false, opts, 0, "")
	}

	pdf.SetY(-22)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Present this ticket at the entrance. Seats are non-transferable.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func joinSeatNumbers(seatNumbers []int) string {
	parts := make([]string, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ", ")
}
