package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/shared/config"
	"cinebook/internal/users"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*users.User
	byEmail map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*users.User),
		byEmail: make(map[string]*users.User),
	}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *users.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	user, ok := r.byID[id]
	if !ok {
		return users.ErrUserNotFound
	}
	if password, ok := updates["password"].(string); ok {
		user.Password = password
	}
	if firstName, ok := updates["first_name"].(string); ok {
		user.FirstName = firstName
	}
	return nil
}

func authConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessExpiresIn = 15 * time.Minute
	cfg.JWT.RefreshExpiresIn = 24 * time.Hour
	return cfg
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "USER", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// Password is stored hashed, never plaintext
	stored := repo.byEmail["ada@example.com"]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := service.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewService(newFakeUserRepo(), authConfig())

	_, err := service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	pair, err := service.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	claims, err := service.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	service := NewService(newFakeUserRepo(), authConfig())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, authConfig())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	userID, err := uuid.Parse(resp.User.ID)
	require.NoError(t, err)

	err = service.ChangePassword(context.Background(), userID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = service.ChangePassword(context.Background(), userID, &ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "ada@example.com",
		Password: "newsecret",
	})
	assert.NoError(t, err)
}
