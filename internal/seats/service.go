package seats

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var ErrInvalidSeatMap = errors.New("invalid seat map")

type Service interface {
	// Inventory queries
	ListByShow(ctx context.Context, showID uuid.UUID, availableOnly bool) ([]SeatResponse, error)
	ListByShowAdmin(ctx context.Context, showID uuid.UUID) ([]AdminSeatResponse, error)

	// Inventory setup
	GenerateDefault(ctx context.Context, showID uuid.UUID, capacity int) error
	Replace(ctx context.Context, showID uuid.UUID, seatNumbers []int) ([]SeatResponse, error)
	DeleteByShow(ctx context.Context, showID uuid.UUID) error

	// Availability check used by the booking orchestrator: requested
	// numbers partitioned against the current snapshot. Unknown and
	// already-booked numbers both land in unavailable.
	Partition(ctx context.Context, showID uuid.UUID, requested []int) (available, unavailable []int, err error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListByShow(ctx context.Context, showID uuid.UUID, availableOnly bool) ([]SeatResponse, error) {
	seats, err := s.repo.GetByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	response := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		if availableOnly && !seat.IsAvailable {
			continue
		}
		response = append(response, seat.ToResponse())
	}
	return response, nil
}

func (s *service) ListByShowAdmin(ctx context.Context, showID uuid.UUID) ([]AdminSeatResponse, error) {
	seats, err := s.repo.GetByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	response := make([]AdminSeatResponse, 0, len(seats))
	for _, seat := range seats {
		response = append(response, seat.ToAdminResponse())
	}
	return response, nil
}

func (s *service) GenerateDefault(ctx context.Context, showID uuid.UUID, capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidSeatMap)
	}

	seats := make([]Seat, 0, capacity)
	for number := 1; number <= capacity; number++ {
		seats = append(seats, Seat{
			ShowID:      showID,
			SeatNumber:  number,
			IsAvailable: true,
		})
	}
	return s.repo.CreateBatch(ctx, seats)
}

func (s *service) Replace(ctx context.Context, showID uuid.UUID, seatNumbers []int) ([]SeatResponse, error) {
	if len(seatNumbers) == 0 {
		return nil, fmt.Errorf("%w: empty seat list", ErrInvalidSeatMap)
	}

	seen := make(map[int]bool, len(seatNumbers))
	seats := make([]Seat, 0, len(seatNumbers))
	for _, number := range seatNumbers {
		if number <= 0 {
			return nil, fmt.Errorf("%w: seat number %d is not positive", ErrInvalidSeatMap, number)
		}
		if seen[number] {
			return nil, fmt.Errorf("%w: duplicate seat number %d", ErrInvalidSeatMap, number)
		}
		seen[number] = true
		seats = append(seats, Seat{
			ShowID:      showID,
			SeatNumber:  number,
			IsAvailable: true,
		})
	}

	sort.Slice(seats, func(i, j int) bool { return seats[i].SeatNumber < seats[j].SeatNumber })

	if err := s.repo.Replace(ctx, showID, seats); err != nil {
		return nil, fmt.Errorf("failed to replace seats: %w", err)
	}

	response := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		response = append(response, seat.ToResponse())
	}
	return response, nil
}

func (s *service) DeleteByShow(ctx context.Context, showID uuid.UUID) error {
	return s.repo.DeleteByShow(ctx, showID)
}

func (s *service) Partition(ctx context.Context, showID uuid.UUID, requested []int) ([]int, []int, error) {
	seats, err := s.repo.GetByShow(ctx, showID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get seats: %w", err)
	}

	bookable := make(map[int]bool, len(seats))
	for _, seat := range seats {
		bookable[seat.SeatNumber] = seat.IsAvailable
	}

	var available, unavailable []int
	for _, number := range requested {
		if bookable[number] {
			available = append(available, number)
		} else {
			unavailable = append(unavailable, number)
		}
	}
	return available, unavailable, nil
}
