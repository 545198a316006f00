package users

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TicketRecord is a ledger entry shown on the tickets endpoint
// (simplified view of a booking, kept local to avoid a package cycle)
type TicketRecord struct {
	TicketNumber string    `json:"ticket_number"`
	ShowTitle    string    `json:"show_title"`
	SeatNumbers  []int     `json:"seat_numbers"`
	Showtime     time.Time `json:"showtime"`
	BookedAt     time.Time `json:"booked_at"`
}

// BookingLedger exposes the bookings owned by a user
type BookingLedger interface {
	TicketsForUser(ctx context.Context, userID uuid.UUID) ([]TicketRecord, error)
}

type TicketSummary struct {
	TotalTickets int            `json:"total_tickets"`
	Bookings     []TicketRecord `json:"bookings"`
}

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error)
	GetTickets(ctx context.Context, userID uuid.UUID) (*TicketSummary, error)
}

type service struct {
	repo   Repository
	ledger BookingLedger
}

func NewService(repo Repository, ledger BookingLedger) Service {
	return &service{repo: repo, ledger: ledger}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.ToProfile()
	return &profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error) {
	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *service) GetTickets(ctx context.Context, userID uuid.UUID) (*TicketSummary, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &TicketSummary{
		TotalTickets: user.Tickets,
		Bookings:     []TicketRecord{},
	}

	if s.ledger != nil {
		records, err := s.ledger.TicketsForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		summary.Bookings = records
	}

	return summary, nil
}
