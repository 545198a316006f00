package shows

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/users"
)

// Genre is the fixed set of category tags a show can carry
type Genre string

const (
	GenreAction         Genre = "Action"
	GenreAdventure      Genre = "Adventure"
	GenreHorror         Genre = "Horror"
	GenreComedy         Genre = "Comedy"
	GenreRomance        Genre = "Romance"
	GenreScienceFiction Genre = "Science-fiction"
)

var allGenres = []Genre{
	GenreAction, GenreAdventure, GenreHorror,
	GenreComedy, GenreRomance, GenreScienceFiction,
}

func IsValidGenre(genre string) bool {
	for _, g := range allGenres {
		if string(g) == genre {
			return true
		}
	}
	return false
}

// Show is a bookable screening with its own seat map and reviews.
// Seats and reviews are owned by the show and deleted with it; bookings
// reference the show but survive as ledger entries.
type Show struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Summary     string    `json:"summary" gorm:"not null"`
	Director    string    `json:"director" gorm:"not null"`
	DurationMin int       `json:"duration_min" gorm:"not null"`
	Genre       Genre     `json:"genre" gorm:"type:varchar(20);not null"`
	Showtime    time.Time `json:"showtime" gorm:"not null"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *users.User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (Show) TableName() string {
	return "shows"
}

// CreateShowRequest creates a show; the owner is injected from the caller
// identity, never taken from the body. SeatNumbers is optional: when
// omitted, a default 1..capacity seat map is generated.
type CreateShowRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Summary     string    `json:"summary" binding:"required"`
	Director    string    `json:"director" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required,min=1"`
	Genre       string    `json:"genre" binding:"required,genre"`
	Showtime    time.Time `json:"showtime" binding:"required"`
	SeatNumbers []int     `json:"seat_numbers" binding:"omitempty,min=1,dive,min=1"`
}

// UpdateShowRequest partially updates show metadata
type UpdateShowRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Summary     *string    `json:"summary" binding:"omitempty"`
	Director    *string    `json:"director" binding:"omitempty"`
	DurationMin *int       `json:"duration_min" binding:"omitempty,min=1"`
	Genre       *string    `json:"genre" binding:"omitempty,genre"`
	Showtime    *time.Time `json:"showtime" binding:"omitempty"`
}

// OwnerInfo is the display view of the owning user
type OwnerInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ShowResponse is the API view of a show
type ShowResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Director    string     `json:"director"`
	DurationMin int        `json:"duration_min"`
	Genre       string     `json:"genre"`
	Showtime    time.Time  `json:"showtime"`
	Owner       *OwnerInfo `json:"owner,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
