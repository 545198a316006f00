package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"cinebook/internal/seats"
	"cinebook/internal/shared/utils/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"
	"cinebook/pkg/ticketdoc"
)

var (
	ErrShowNotFound   = errors.New("show not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotTicketOwner = errors.New("booking belongs to another user")
	ErrNoSeatsChosen  = errors.New("no seats requested")
	ErrTooManySeats   = errors.New("too many seats requested")
)

// ShowInfo is the slice of a show the booking flow needs
type ShowInfo struct {
	ID       uuid.UUID
	Title    string
	Showtime time.Time
}

// UserInfo is the slice of a user the booking flow needs
type UserInfo struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Tickets   int
}

// ShowDirectory resolves shows without importing the shows package
type ShowDirectory interface {
	GetShowInfo(ctx context.Context, showID uuid.UUID) (*ShowInfo, error)
}

// UserDirectory resolves users without importing the users package
type UserDirectory interface {
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*UserInfo, error)
}

// SeatInventory checks requested seats against the live seat map
type SeatInventory interface {
	Partition(ctx context.Context, showID uuid.UUID, requested []int) (available, unavailable []int, err error)
}

// NotificationPublisher receives confirmation events after commit.
// Publish failures never fail the booking.
type NotificationPublisher interface {
	PublishBookingConfirmation(ctx context.Context, event ConfirmationEvent) error
}

// ConfirmationEvent is the post-commit notification payload
type ConfirmationEvent struct {
	TicketNumber string    `json:"ticket_number"`
	ShowTitle    string    `json:"show_title"`
	Showtime     time.Time `json:"showtime"`
	SeatNumbers  []int     `json:"seat_numbers"`
	UserID       string    `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserName     string    `json:"user_name"`
	BookedAt     time.Time `json:"booked_at"`
}

type Service interface {
	BookSeats(ctx context.Context, showID, userID uuid.UUID, seatNumbers []int) (*BookingConfirmation, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error)
	TicketsForUser(ctx context.Context, userID uuid.UUID) ([]TicketRecordView, error)

	TicketQR(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) ([]byte, error)
	TicketPDF(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) ([]byte, error)
}

// TicketRecordView mirrors the user-facing ticket ledger entry
type TicketRecordView struct {
	TicketNumber string
	ShowTitle    string
	SeatNumbers  []int
	Showtime     time.Time
	BookedAt     time.Time
}

type service struct {
	repo         Repository
	shows        ShowDirectory
	users        UserDirectory
	inventory    SeatInventory
	publisher    NotificationPublisher
	cacheService cache.Service
	maxSeats     int
}

func NewService(repo Repository, shows ShowDirectory, users UserDirectory, inventory SeatInventory, maxSeats int) *service {
	return &service{
		repo:      repo,
		shows:     shows,
		users:     users,
		inventory: inventory,
		maxSeats:  maxSeats,
	}
}

// SetNotificationPublisher wires the confirmation pipeline. Optional;
// bookings work without it.
func (s *service) SetNotificationPublisher(publisher NotificationPublisher) {
	s.publisher = publisher
}

// SetCacheService enables seat-map cache invalidation after bookings
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// BookSeats reserves every requested seat or none of them. The final
// claim happens inside one transaction with a conditional update, so a
// stale availability read can delay a booking but never double-sell a
// seat.
func (s *service) BookSeats(ctx context.Context, showID, userID uuid.UUID, seatNumbers []int) (*BookingConfirmation, error) {
	if len(seatNumbers) == 0 {
		return nil, ErrNoSeatsChosen
	}
	if s.maxSeats > 0 && len(seatNumbers) > s.maxSeats {
		return nil, fmt.Errorf("%w: limit is %d per booking", ErrTooManySeats, s.maxSeats)
	}

	requested := dedupeSorted(seatNumbers)

	show, err := s.shows.GetShowInfo(ctx, showID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, unavailable, err := s.inventory.Partition(ctx, showID, requested)
	if err != nil {
		return nil, fmt.Errorf("failed to check seat availability: %w", err)
	}
	if len(unavailable) > 0 {
		logger.GetDefault().LogBookingConflict(ctx, showID.String(), userID.String(), unavailable)
		return nil, seats.NewUnavailableError(unavailable)
	}

	ticketNumber, err := generateTicketNumber()
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		TicketNumber: ticketNumber,
		UserID:       userID,
		ShowID:       showID,
		Showtime:     show.Showtime,
		TotalSeats:   len(requested),
	}
	for _, number := range requested {
		booking.Seats = append(booking.Seats, BookingSeat{SeatNumber: number})
	}

	if err := s.repo.CreateWithSeatCommit(ctx, booking, requested); err != nil {
		if errors.Is(err, ErrSeatStateChanged) {
			// Lost the race. Re-read the map to report which seats
			// were taken from under us.
			_, taken, perr := s.inventory.Partition(ctx, showID, requested)
			if perr != nil || len(taken) == 0 {
				taken = requested
			}
			logger.GetDefault().LogBookingConflict(ctx, showID.String(), userID.String(), taken)
			return nil, seats.NewUnavailableError(taken)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.GetDefault().LogBookingCreated(ctx, ticketNumber, showID.String(), userID.String(), len(requested))
	s.invalidateSeatCache(ctx, showID)
	s.publishConfirmation(ctx, booking, show, user)

	return &BookingConfirmation{
		Message:      "Booking confirmed",
		Booking:      s.toResponse(booking, show, user),
		BookedSeats:  requested,
		TotalTickets: user.Tickets + len(requested),
	}, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingResponse, error) {
	user, err := s.users.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	response := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		show := s.lookupShow(ctx, bookings[i].ShowID, bookings[i].Showtime)
		response = append(response, s.toResponse(&bookings[i], show, user))
	}
	return response, nil
}

func (s *service) TicketsForUser(ctx context.Context, userID uuid.UUID) ([]TicketRecordView, error) {
	bookings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	records := make([]TicketRecordView, 0, len(bookings))
	for i := range bookings {
		show := s.lookupShow(ctx, bookings[i].ShowID, bookings[i].Showtime)
		records = append(records, TicketRecordView{
			TicketNumber: bookings[i].TicketNumber,
			ShowTitle:    show.Title,
			SeatNumbers:  bookings[i].SeatNumbers(),
			Showtime:     bookings[i].Showtime,
			BookedAt:     bookings[i].CreatedAt,
		})
	}
	return records, nil
}

func (s *service) TicketQR(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) ([]byte, error) {
	booking, err := s.authorizedBooking(ctx, bookingID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}
	return ticketdoc.QRPNG(booking.TicketNumber, 256)
}

func (s *service) TicketPDF(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) ([]byte, error) {
	booking, err := s.authorizedBooking(ctx, bookingID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	show := s.lookupShow(ctx, booking.ShowID, booking.Showtime)
	holder, err := s.users.GetUserInfo(ctx, booking.UserID)
	if err != nil {
		return nil, err
	}

	qr, err := ticketdoc.QRPNG(booking.TicketNumber, 256)
	if err != nil {
		return nil, err
	}

	return ticketdoc.TicketPDF(ticketdoc.TicketData{
		TicketNumber: booking.TicketNumber,
		ShowTitle:    show.Title,
		Showtime:     booking.Showtime,
		SeatNumbers:  booking.SeatNumbers(),
		HolderName:   holder.FirstName + " " + holder.LastName,
		HolderEmail:  holder.Email,
		QRPNGBytes:   qr,
	})
}

func (s *service) authorizedBooking(ctx context.Context, bookingID, actorID uuid.UUID, isAdmin bool) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != actorID {
		return nil, ErrNotTicketOwner
	}
	return booking, nil
}

// lookupShow tolerates deleted shows: bookings are permanent, so a
// missing show degrades to an ID-only summary instead of an error.
func (s *service) lookupShow(ctx context.Context, showID uuid.UUID, showtime time.Time) *ShowInfo {
	show, err := s.shows.GetShowInfo(ctx, showID)
	if err != nil {
		return &ShowInfo{ID: showID, Showtime: showtime}
	}
	return show
}

func (s *service) invalidateSeatCache(ctx context.Context, showID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildShowSeatsKey(showID.String())); err != nil {
		logger.GetDefault().Warn("failed to invalidate seat cache", "show_id", showID.String(), "error", err)
	}
}

func (s *service) publishConfirmation(ctx context.Context, booking *Booking, show *ShowInfo, user *UserInfo) {
	if s.publisher == nil {
		return
	}
	event := ConfirmationEvent{
		TicketNumber: booking.TicketNumber,
		ShowTitle:    show.Title,
		Showtime:     booking.Showtime,
		SeatNumbers:  booking.SeatNumbers(),
		UserID:       user.ID.String(),
		UserEmail:    user.Email,
		UserName:     user.FirstName + " " + user.LastName,
		BookedAt:     booking.CreatedAt,
	}
	if err := s.publisher.PublishBookingConfirmation(ctx, event); err != nil {
		logger.GetDefault().Warn("failed to publish booking confirmation",
			"ticket_number", booking.TicketNumber, "error", err)
	}
}

func (s *service) toResponse(booking *Booking, show *ShowInfo, user *UserInfo) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		TicketNumber: booking.TicketNumber,
		Show: ShowSummary{
			ID:       show.ID.String(),
			Title:    show.Title,
			Showtime: show.Showtime,
		},
		User: UserSummary{
			ID:        user.ID.String(),
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
		SeatNumbers:  booking.SeatNumbers(),
		Showtime:     booking.Showtime,
		CreatedAt:    booking.CreatedAt,
	}
}

func dedupeSorted(numbers []int) []int {
	seen := make(map[int]bool, len(numbers))
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
