package bookings

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/seats"
)

// fakeBookingRepo mimics the transactional seat commit: claims are
// checked and applied under one lock, so concurrent calls see the same
// all-or-nothing behavior as the conditional update in Postgres.
type fakeBookingRepo struct {
	mu        sync.Mutex
	seatState map[int]bool // seat number -> available
	bookings  []*Booking
	tickets   map[uuid.UUID]int
}

func newFakeBookingRepo(availableSeats ...int) *fakeBookingRepo {
	state := make(map[int]bool, len(availableSeats))
	for _, n := range availableSeats {
		state[n] = true
	}
	return &fakeBookingRepo{
		seatState: state,
		tickets:   make(map[uuid.UUID]int),
	}
}

func (r *fakeBookingRepo) CreateWithSeatCommit(ctx context.Context, booking *Booking, seatNumbers []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range seatNumbers {
		if !r.seatState[n] {
			return ErrSeatStateChanged
		}
	}
	for _, n := range seatNumbers {
		r.seatState[n] = false
	}

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	r.bookings = append(r.bookings, booking)
	r.tickets[booking.UserID] += booking.TotalSeats
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeShowDirectory struct {
	shows map[uuid.UUID]*ShowInfo
}

func (d *fakeShowDirectory) GetShowInfo(ctx context.Context, showID uuid.UUID) (*ShowInfo, error) {
	show, ok := d.shows[showID]
	if !ok {
		return nil, ErrShowNotFound
	}
	return show, nil
}

type fakeUserDirectory struct {
	users map[uuid.UUID]*UserInfo
}

func (d *fakeUserDirectory) GetUserInfo(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, ok := d.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// fakeInventory reads availability from the repo so the snapshot stays
// consistent with commits
type fakeInventory struct {
	repo *fakeBookingRepo
}

func (i *fakeInventory) Partition(ctx context.Context, showID uuid.UUID, requested []int) ([]int, []int, error) {
	i.repo.mu.Lock()
	defer i.repo.mu.Unlock()
	var available, unavailable []int
	for _, n := range requested {
		if i.repo.seatState[n] {
			available = append(available, n)
		} else {
			unavailable = append(unavailable, n)
		}
	}
	return available, unavailable, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ConfirmationEvent
}

func (p *recordingPublisher) PublishBookingConfirmation(ctx context.Context, event ConfirmationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type bookingFixture struct {
	repo    *fakeBookingRepo
	service *service
	showID  uuid.UUID
	userID  uuid.UUID
}

func newBookingFixture(t *testing.T, availableSeats ...int) *bookingFixture {
	t.Helper()

	repo := newFakeBookingRepo(availableSeats...)
	showID := uuid.New()
	userID := uuid.New()

	shows := &fakeShowDirectory{shows: map[uuid.UUID]*ShowInfo{
		showID: {ID: showID, Title: "Alien", Showtime: time.Now().Add(24 * time.Hour)},
	}}
	users := &fakeUserDirectory{users: map[uuid.UUID]*UserInfo{
		userID: {ID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Tickets: 5},
	}}

	svc := NewService(repo, shows, users, &fakeInventory{repo: repo}, 10)
	return &bookingFixture{repo: repo, service: svc, showID: showID, userID: userID}
}

func TestBookSeatsSuccess(t *testing.T) {
	f := newBookingFixture(t, 1, 2, 3, 4, 5)

	confirmation, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{3, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, confirmation.BookedSeats)
	assert.Equal(t, 7, confirmation.TotalTickets) // 5 lifetime + 2 new
	assert.True(t, strings.HasPrefix(confirmation.Booking.TicketNumber, "TKT-"))
	assert.Equal(t, "Alien", confirmation.Booking.Show.Title)

	// Seats are claimed and the user's lifetime counter moved up
	assert.False(t, f.repo.seatState[1])
	assert.False(t, f.repo.seatState[3])
	assert.True(t, f.repo.seatState[2])
	assert.Equal(t, 2, f.repo.tickets[f.userID])
}

func TestBookSeatsDeduplicatesRequest(t *testing.T) {
	f := newBookingFixture(t, 1, 2, 3)

	confirmation, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{2, 2, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, confirmation.BookedSeats)
	assert.Equal(t, 1, f.repo.tickets[f.userID])
}

func TestBookSeatsAllOrNothing(t *testing.T) {
	f := newBookingFixture(t, 1, 2, 3)
	f.repo.seatState[2] = false // already taken

	_, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{1, 2, 99})
	require.Error(t, err)

	var unavailable *seats.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []int{2, 99}, unavailable.SeatNumbers)

	// Nothing was claimed, booked, or counted
	assert.True(t, f.repo.seatState[1])
	assert.Empty(t, f.repo.bookings)
	assert.Zero(t, f.repo.tickets[f.userID])
}

func TestBookSeatsEmptyRequest(t *testing.T) {
	f := newBookingFixture(t, 1, 2)

	_, err := f.service.BookSeats(context.Background(), f.showID, f.userID, nil)
	assert.ErrorIs(t, err, ErrNoSeatsChosen)
}

func TestBookSeatsOverLimit(t *testing.T) {
	f := newBookingFixture(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	_, err := f.service.BookSeats(context.Background(), f.showID, f.userID,
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	assert.ErrorIs(t, err, ErrTooManySeats)
}

func TestBookSeatsUnknownShow(t *testing.T) {
	f := newBookingFixture(t, 1)

	_, err := f.service.BookSeats(context.Background(), uuid.New(), f.userID, []int{1})
	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestBookSeatsUnknownUser(t *testing.T) {
	f := newBookingFixture(t, 1)

	_, err := f.service.BookSeats(context.Background(), f.showID, uuid.New(), []int{1})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBookSeatsConcurrentRequestsOneWins(t *testing.T) {
	f := newBookingFixture(t, 1, 2, 3)

	const contenders = 8
	var wg sync.WaitGroup
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.BookSeats(context.Background(), f.showID, f.userID, []int{2})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var unavailable *seats.UnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, []int{2}, unavailable.SeatNumbers)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.repo.bookings, 1)
	assert.Equal(t, 1, f.repo.tickets[f.userID])
}

func TestBookSeatsPublishesConfirmation(t *testing.T) {
	f := newBookingFixture(t, 1, 2)
	publisher := &recordingPublisher{}
	f.service.SetNotificationPublisher(publisher)

	_, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{1, 2})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, "ada@example.com", event.UserEmail)
	assert.Equal(t, "Alien", event.ShowTitle)
	assert.Equal(t, []int{1, 2}, event.SeatNumbers)
}

func TestGetUserBookingsSurvivesDeletedShow(t *testing.T) {
	f := newBookingFixture(t, 1, 2)

	confirmation, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{1})
	require.NoError(t, err)

	// Simulate the show being deleted after booking
	f.service.shows.(*fakeShowDirectory).shows = map[uuid.UUID]*ShowInfo{}

	bookings, err := f.service.GetUserBookings(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, confirmation.Booking.TicketNumber, bookings[0].TicketNumber)
	assert.Equal(t, f.showID.String(), bookings[0].Show.ID)
	assert.Empty(t, bookings[0].Show.Title)
}

func TestTicketArtifactsRequireOwnership(t *testing.T) {
	f := newBookingFixture(t, 1)

	confirmation, err := f.service.BookSeats(context.Background(), f.showID, f.userID, []int{1})
	require.NoError(t, err)
	bookingID, err := uuid.Parse(confirmation.Booking.ID)
	require.NoError(t, err)

	stranger := uuid.New()

	_, err = f.service.TicketQR(context.Background(), bookingID, stranger, false)
	assert.ErrorIs(t, err, ErrNotTicketOwner)

	// Owner and admin both pass
	png, err := f.service.TicketQR(context.Background(), bookingID, f.userID, false)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = f.service.TicketQR(context.Background(), bookingID, stranger, true)
	assert.NoError(t, err)
}

func TestGenerateTicketNumberShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := generateTicketNumber()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(number, "TKT-"))
		assert.False(t, seen[number], "ticket number %s repeated", number)
		seen[number] = true
	}
}
