package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *User) error {
	user.ID = uuid.New()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	if firstName, ok := updates["first_name"].(string); ok {
		user.FirstName = firstName
	}
	if lastName, ok := updates["last_name"].(string); ok {
		user.LastName = lastName
	}
	return nil
}

type fakeLedger struct {
	records []TicketRecord
}

func (l *fakeLedger) TicketsForUser(ctx context.Context, userID uuid.UUID) ([]TicketRecord, error) {
	return l.records, nil
}

func seedUser(repo *fakeUserRepo) *User {
	user := &User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "hashed",
		Role:      RoleUser,
		Tickets:   3,
	}
	repo.Create(context.Background(), user)
	return user
}

func TestGetProfileOmitsPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(repo)
	service := NewService(repo, nil)

	profile, err := service.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, 3, profile.Tickets)
	assert.Equal(t, "USER", profile.Role)
}

func TestUpdateProfileNameFieldsOnly(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(repo)
	service := NewService(repo, nil)

	firstName := "Augusta"

	profile, err := service.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		FirstName: &firstName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Augusta", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestGetTicketsIncludesLedger(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(repo)

	ledger := &fakeLedger{records: []TicketRecord{
		{
			TicketNumber: "TKT-ABC-1234",
			ShowTitle:    "Alien",
			SeatNumbers:  []int{4, 5},
			Showtime:     time.Now().Add(24 * time.Hour),
			BookedAt:     time.Now(),
		},
	}}
	service := NewService(repo, ledger)

	summary, err := service.GetTickets(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalTickets)
	require.Len(t, summary.Bookings, 1)
	assert.Equal(t, "TKT-ABC-1234", summary.Bookings[0].TicketNumber)
}

func TestGetTicketsWithoutLedger(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(repo)
	service := NewService(repo, nil)

	summary, err := service.GetTickets(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalTickets)
	assert.Empty(t, summary.Bookings)
}

func TestGetProfileUnknownUser(t *testing.T) {
	service := NewService(newFakeUserRepo(), nil)

	_, err := service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	user := &User{Role: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}
