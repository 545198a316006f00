package shows

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
)

type fakeShowRepo struct {
	shows map[uuid.UUID]*Show
}

func newFakeShowRepo() *fakeShowRepo {
	return &fakeShowRepo{shows: make(map[uuid.UUID]*Show)}
}

func (r *fakeShowRepo) Create(ctx context.Context, show *Show) error {
	show.ID = uuid.New()
	show.CreatedAt = time.Now()
	r.shows[show.ID] = show
	return nil
}

func (r *fakeShowRepo) GetByID(ctx context.Context, id uuid.UUID) (*Show, error) {
	show, ok := r.shows[id]
	if !ok {
		return nil, ErrShowNotFound
	}
	return show, nil
}

func (r *fakeShowRepo) GetBySlug(ctx context.Context, slug string) (*Show, error) {
	for _, show := range r.shows {
		if show.Slug == slug {
			return show, nil
		}
	}
	return nil, ErrShowNotFound
}

func (r *fakeShowRepo) GetAll(ctx context.Context) ([]Show, error) {
	out := make([]Show, 0, len(r.shows))
	for _, show := range r.shows {
		out = append(out, *show)
	}
	return out, nil
}

func (r *fakeShowRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Show, error) {
	show, ok := r.shows[id]
	if !ok {
		return nil, ErrShowNotFound
	}
	if title, ok := updates["title"].(string); ok {
		show.Title = title
	}
	if director, ok := updates["director"].(string); ok {
		show.Director = director
	}
	return show, nil
}

func (r *fakeShowRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.shows[id]; !ok {
		return ErrShowNotFound
	}
	delete(r.shows, id)
	return nil
}

func (r *fakeShowRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.shows[id]
	return ok, nil
}

func (r *fakeShowRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, show := range r.shows {
		if show.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID][]seats.Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[uuid.UUID][]seats.Seat)}
}

func (r *fakeSeatRepo) GetByShow(ctx context.Context, showID uuid.UUID) ([]seats.Seat, error) {
	return r.seats[showID], nil
}

func (r *fakeSeatRepo) CreateBatch(ctx context.Context, batch []seats.Seat) error {
	if len(batch) == 0 {
		return nil
	}
	r.seats[batch[0].ShowID] = append(r.seats[batch[0].ShowID], batch...)
	return nil
}

func (r *fakeSeatRepo) Replace(ctx context.Context, showID uuid.UUID, batch []seats.Seat) error {
	r.seats[showID] = batch
	return nil
}

func (r *fakeSeatRepo) DeleteByShow(ctx context.Context, showID uuid.UUID) error {
	delete(r.seats, showID)
	return nil
}

func newShowFixture() (*service, *fakeShowRepo, *fakeSeatRepo) {
	showRepo := newFakeShowRepo()
	seatRepo := newFakeSeatRepo()
	cfg := &config.Config{}
	cfg.Booking.SeatCapacity = 35
	return NewService(showRepo, seats.NewService(seatRepo), cfg), showRepo, seatRepo
}

func validCreateRequest() CreateShowRequest {
	return CreateShowRequest{
		Title:       "The Conjuring",
		Summary:     "A haunted farmhouse",
		Director:    "James Wan",
		DurationMin: 112,
		Genre:       string(GenreHorror),
		Showtime:    time.Now().Add(48 * time.Hour),
	}
}

func TestCreateShowInjectsOwnerAndSlug(t *testing.T) {
	service, repo, _ := newShowFixture()
	ownerID := uuid.New()

	show, err := service.CreateShow(context.Background(), ownerID, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "the-conjuring", show.Slug)
	require.Len(t, repo.shows, 1)
	for _, stored := range repo.shows {
		assert.Equal(t, ownerID, stored.OwnerID)
	}
}

func TestCreateShowGeneratesDefaultSeats(t *testing.T) {
	service, _, seatRepo := newShowFixture()

	show, err := service.CreateShow(context.Background(), uuid.New(), validCreateRequest())
	require.NoError(t, err)

	showID, err := uuid.Parse(show.ID)
	require.NoError(t, err)
	require.Len(t, seatRepo.seats[showID], 35)
	assert.Equal(t, 1, seatRepo.seats[showID][0].SeatNumber)
	assert.Equal(t, 35, seatRepo.seats[showID][34].SeatNumber)
}

func TestCreateShowWithCustomSeatMap(t *testing.T) {
	service, _, seatRepo := newShowFixture()

	req := validCreateRequest()
	req.SeatNumbers = []int{1, 2, 10}

	show, err := service.CreateShow(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	showID, err := uuid.Parse(show.ID)
	require.NoError(t, err)
	require.Len(t, seatRepo.seats[showID], 3)
}

func TestCreateShowSlugCollision(t *testing.T) {
	service, _, _ := newShowFixture()

	first, err := service.CreateShow(context.Background(), uuid.New(), validCreateRequest())
	require.NoError(t, err)

	second, err := service.CreateShow(context.Background(), uuid.New(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "the-conjuring", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "the-conjuring")
}

func TestCreateShowRejectsUnknownGenre(t *testing.T) {
	service, _, _ := newShowFixture()

	req := validCreateRequest()
	req.Genre = "Documentary"

	_, err := service.CreateShow(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestUpdateShowNotFound(t *testing.T) {
	service, _, _ := newShowFixture()
	title := "New title"

	_, err := service.UpdateShow(context.Background(), uuid.New(), UpdateShowRequest{Title: &title})
	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestDeleteShowRemovesShow(t *testing.T) {
	service, repo, _ := newShowFixture()

	show, err := service.CreateShow(context.Background(), uuid.New(), validCreateRequest())
	require.NoError(t, err)
	showID, err := uuid.Parse(show.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteShow(context.Background(), showID))
	assert.Empty(t, repo.shows)
}

func TestIsValidGenre(t *testing.T) {
	for _, genre := range []string{"Action", "Adventure", "Horror", "Comedy", "Romance", "Science-fiction"} {
		assert.True(t, IsValidGenre(genre), genre)
	}
	assert.False(t, IsValidGenre("Documentary"))
	assert.False(t, IsValidGenre("horror"))
}
