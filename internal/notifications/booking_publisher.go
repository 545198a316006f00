package notifications

import (
	"context"

	"cinebook/internal/bookings"
)

// BookingPublisher adapts the Kafka producer to the interface the
// booking service publishes through, keeping the bookings package free
// of Kafka imports.
type BookingPublisher struct {
	producer Producer
}

func NewBookingPublisher(producer Producer) *BookingPublisher {
	return &BookingPublisher{producer: producer}
}

func (p *BookingPublisher) PublishBookingConfirmation(ctx context.Context, event bookings.ConfirmationEvent) error {
	notification := NewBookingConfirmation(event.UserEmail, event.UserName, BookingDetails{
		TicketNumber: event.TicketNumber,
		ShowTitle:    event.ShowTitle,
		Showtime:     event.Showtime,
		SeatNumbers:  event.SeatNumbers,
		BookedAt:     event.BookedAt,
	})
	return p.producer.Publish(ctx, notification)
}
