package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeBookingConfirmation NotificationType = "BOOKING_CONFIRMATION"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "PENDING"
	StatusQueued  NotificationStatus = "QUEUED"
	StatusSent    NotificationStatus = "SENT"
	StatusFailed  NotificationStatus = "FAILED"
)

// Notification is the message shipped through Kafka to the email
// workers. BookingDetails carries everything the template needs so the
// consumer never calls back into the database.
type Notification struct {
	ID             string             `json:"id"`
	Type           NotificationType   `json:"type"`
	Status         NotificationStatus `json:"status"`
	RecipientEmail string             `json:"recipient_email"`
	RecipientName  string             `json:"recipient_name"`
	Booking        BookingDetails     `json:"booking"`
	CreatedAt      time.Time          `json:"created_at"`
}

type BookingDetails struct {
	TicketNumber string    `json:"ticket_number"`
	ShowTitle    string    `json:"show_title"`
	Showtime     time.Time `json:"showtime"`
	SeatNumbers  []int     `json:"seat_numbers"`
	BookedAt     time.Time `json:"booked_at"`
}

func NewBookingConfirmation(recipientEmail, recipientName string, booking BookingDetails) *Notification {
	return &Notification{
		ID:             uuid.New().String(),
		Type:           TypeBookingConfirmation,
		Status:         StatusPending,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Booking:        booking,
		CreatedAt:      time.Now(),
	}
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func FromJSON(data []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// PartitionKey routes all of one recipient's notifications to the same
// partition so they arrive in order
func (n *Notification) PartitionKey() string {
	return n.RecipientEmail
}
