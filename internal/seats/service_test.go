package seats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeatRepo struct {
	seats map[uuid.UUID][]Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID][]Seat)}
}

func (r *fakeSeatRepo) GetByShow(ctx context.Context, showID uuid.UUID) ([]Seat, error) {
	return r.seats[showID], nil
}

func (r *fakeSeatRepo) CreateBatch(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	showID := seats[0].ShowID
	r.seats[showID] = append(r.seats[showID], seats...)
	return nil
}

func (r *fakeSeatRepo) Replace(ctx context.Context, showID uuid.UUID, seats []Seat) error {
	r.seats[showID] = seats
	return nil
}

func (r *fakeSeatRepo) DeleteByShow(ctx context.Context, showID uuid.UUID) error {
	delete(r.seats, showID)
	return nil
}

func TestGenerateDefault(t *testing.T) {
	repo := newFakeSeatRepo()
	service := NewService(repo)
	showID := uuid.New()

	err := service.GenerateDefault(context.Background(), showID, 35)
	require.NoError(t, err)

	seats := repo.seats[showID]
	require.Len(t, seats, 35)
	assert.Equal(t, 1, seats[0].SeatNumber)
	assert.Equal(t, 35, seats[34].SeatNumber)
	for _, seat := range seats {
		assert.True(t, seat.IsAvailable)
	}
}

func TestGenerateDefaultRejectsNonPositiveCapacity(t *testing.T) {
	service := NewService(newFakeSeatRepo())

	err := service.GenerateDefault(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidSeatMap)
}

func TestReplaceValidation(t *testing.T) {
	service := NewService(newFakeSeatRepo())
	showID := uuid.New()

	tests := []struct {
		name        string
		seatNumbers []int
	}{
		{"empty list", []int{}},
		{"zero seat number", []int{0, 1, 2}},
		{"negative seat number", []int{-3}},
		{"duplicate seat number", []int{1, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Replace(context.Background(), showID, tt.seatNumbers)
			assert.ErrorIs(t, err, ErrInvalidSeatMap)
		})
	}
}

func TestReplaceSortsAndStoresSeats(t *testing.T) {
	repo := newFakeSeatRepo()
	service := NewService(repo)
	showID := uuid.New()

	result, err := service.Replace(context.Background(), showID, []int{7, 3, 12})
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, 3, result[0].SeatNumber)
	assert.Equal(t, 7, result[1].SeatNumber)
	assert.Equal(t, 12, result[2].SeatNumber)
}

func TestListByShowFiltersAvailable(t *testing.T) {
	repo := newFakeSeatRepo()
	showID := uuid.New()
	holder := uuid.New()
	repo.seats[showID] = []Seat{
		{ShowID: showID, SeatNumber: 1, IsAvailable: true},
		{ShowID: showID, SeatNumber: 2, IsAvailable: false, BookedBy: &holder},
		{ShowID: showID, SeatNumber: 3, IsAvailable: true},
	}
	service := NewService(repo)

	all, err := service.ListByShow(context.Background(), showID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	available, err := service.ListByShow(context.Background(), showID, true)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, 1, available[0].SeatNumber)
	assert.Equal(t, 3, available[1].SeatNumber)
}

func TestPartition(t *testing.T) {
	repo := newFakeSeatRepo()
	showID := uuid.New()
	holder := uuid.New()
	repo.seats[showID] = []Seat{
		{ShowID: showID, SeatNumber: 1, IsAvailable: true},
		{ShowID: showID, SeatNumber: 2, IsAvailable: false, BookedBy: &holder},
		{ShowID: showID, SeatNumber: 3, IsAvailable: true},
	}
	service := NewService(repo)

	tests := []struct {
		name            string
		requested       []int
		wantAvailable   []int
		wantUnavailable []int
	}{
		{"all available", []int{1, 3}, []int{1, 3}, nil},
		{"one taken", []int{1, 2}, []int{1}, []int{2}},
		{"unknown seat treated as taken", []int{1, 99}, []int{1}, []int{99}},
		{"taken and unknown mixed", []int{2, 99}, nil, []int{2, 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, unavailable, err := service.Partition(context.Background(), showID, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, available)
			assert.Equal(t, tt.wantUnavailable, unavailable)
		})
	}
}

func TestUnavailableErrorSortsSeatNumbers(t *testing.T) {
	err := NewUnavailableError([]int{9, 2, 5})
	assert.Equal(t, []int{2, 5, 9}, err.SeatNumbers)
	assert.Contains(t, err.Error(), "unavailable")
}
