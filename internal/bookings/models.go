package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is an immutable ledger entry for a completed reservation.
// There are no update or delete operations; bookings outlive the show
// they reference.
type Booking struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	TicketNumber string    `json:"ticket_number" gorm:"uniqueIndex;not null"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	ShowID       uuid.UUID `json:"show_id" gorm:"type:uuid;index;not null"`
	Showtime     time.Time `json:"showtime" gorm:"not null"`
	TotalSeats   int       `json:"total_seats" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`

	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// BookingSeat records one seat number included in a booking
type BookingSeat struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	BookingID  uuid.UUID `json:"booking_id" gorm:"type:uuid;index;not null"`
	SeatNumber int       `json:"seat_number" gorm:"not null"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (BookingSeat) TableName() string {
	return "booking_seats"
}

// SeatNumbers returns the booked seat numbers in stored order
func (b *Booking) SeatNumbers() []int {
	numbers := make([]int, 0, len(b.Seats))
	for _, seat := range b.Seats {
		numbers = append(numbers, seat.SeatNumber)
	}
	return numbers
}

// BookSeatsRequest is the payment-endpoint body
type BookSeatsRequest struct {
	SeatNumbers []int `json:"seat_numbers" binding:"required,min=1,dive,min=1"`
}

// ShowSummary is the display view of the booked show
type ShowSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title,omitempty"`
	Showtime time.Time `json:"showtime"`
}

// UserSummary is the display view of the booking user (never the password)
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// BookingResponse is the API view of a ledger entry
type BookingResponse struct {
	ID           string      `json:"id"`
	TicketNumber string      `json:"ticket_number"`
	Show         ShowSummary `json:"show"`
	User         UserSummary `json:"user"`
	SeatNumbers  []int       `json:"seat_numbers"`
	Showtime     time.Time   `json:"showtime"`
	CreatedAt    time.Time   `json:"created_at"`
}

// BookingConfirmation is returned by the payment endpoint.
// TotalTickets is the user's lifetime seat count including this booking.
type BookingConfirmation struct {
	Message      string          `json:"message"`
	Booking      BookingResponse `json:"booking"`
	BookedSeats  []int           `json:"booked_seats"`
	TotalTickets int             `json:"total_tickets"`
}
