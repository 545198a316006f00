package reviews

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/users"
)

// Review is owned by its show and writable only by its author
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ShowID    uuid.UUID `json:"show_id" gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;index;not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	Rating    *int      `json:"rating,omitempty"` // optional, 1..5
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *users.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (Review) TableName() string {
	return "reviews"
}

type CreateReviewRequest struct {
	Comment string `json:"comment" binding:"required,min=1"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Comment *string `json:"comment" binding:"omitempty,min=1"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// AuthorInfo is the display view of a review's author
type AuthorInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReviewResponse struct {
	ID        string      `json:"id"`
	ShowID    string      `json:"show_id"`
	Comment   string      `json:"comment"`
	Rating    *int        `json:"rating,omitempty"`
	Author    *AuthorInfo `json:"author,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (r *Review) ToResponse() ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID.String(),
		ShowID:    r.ShowID.String(),
		Comment:   r.Comment,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Author != nil {
		resp.Author = &AuthorInfo{
			ID:        r.Author.ID.String(),
			FirstName: r.Author.FirstName,
			LastName:  r.Author.LastName,
		}
	}
	return resp
}
