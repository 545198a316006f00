package routes

import (
	"context"

	"github.com/google/uuid"

	"cinebook/internal/bookings"
	"cinebook/internal/shows"
	"cinebook/internal/users"
)

// Cross-package adapters. Each domain package declares the narrow
// interface it needs; these adapters satisfy them so packages never
// import each other directly.

type showDirectoryAdapter struct {
	shows shows.Service
}

func (a *showDirectoryAdapter) GetShowInfo(ctx context.Context, showID uuid.UUID) (*bookings.ShowInfo, error) {
	show, err := a.shows.GetShowModel(ctx, showID)
	if err != nil {
		return nil, bookings.ErrShowNotFound
	}
	return &bookings.ShowInfo{
		ID:       show.ID,
		Title:    show.Title,
		Showtime: show.Showtime,
	}, nil
}

type userDirectoryAdapter struct {
	users users.Repository
}

func (a *userDirectoryAdapter) GetUserInfo(ctx context.Context, userID uuid.UUID) (*bookings.UserInfo, error) {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return nil, bookings.ErrUserNotFound
	}
	return &bookings.UserInfo{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Tickets:   user.Tickets,
	}, nil
}

// showCheckerAdapter serves both the seats controller and the reviews
// service, which declare structurally identical interfaces
type showCheckerAdapter struct {
	shows shows.Service
}

func (a *showCheckerAdapter) ShowExists(ctx context.Context, showID uuid.UUID) (bool, error) {
	return a.shows.ShowExists(ctx, showID)
}

// bookingLedgerAdapter feeds the user ticket history from the booking
// service
type bookingLedgerAdapter struct {
	bookings bookings.Service
}

func (a *bookingLedgerAdapter) TicketsForUser(ctx context.Context, userID uuid.UUID) ([]users.TicketRecord, error) {
	views, err := a.bookings.TicketsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]users.TicketRecord, 0, len(views))
	for _, v := range views {
		records = append(records, users.TicketRecord{
			TicketNumber: v.TicketNumber,
			ShowTitle:    v.ShowTitle,
			SeatNumbers:  v.SeatNumbers,
			Showtime:     v.Showtime,
			BookedAt:     v.BookedAt,
		})
	}
	return records, nil
}
