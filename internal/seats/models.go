package seats

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Seat is one bookable unit inside a show's seat map. Seats are created
// together with their show (or replaced wholesale by an admin) and only
// ever transition available -> booked through the booking transaction.
type Seat struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ShowID      uuid.UUID  `json:"show_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_show_seat"`
	SeatNumber  int        `json:"seat_number" gorm:"not null;uniqueIndex:idx_show_seat"`
	IsAvailable bool       `json:"is_available" gorm:"not null;default:true"`
	BookedBy    *uuid.UUID `json:"booked_by,omitempty" gorm:"type:uuid"` // weak reference, never cascades
}

func (Seat) TableName() string {
	return "seats"
}

// SeatResponse is the public view of a seat (holder hidden)
type SeatResponse struct {
	SeatNumber  int  `json:"seat_number"`
	IsAvailable bool `json:"is_available"`
}

// AdminSeatResponse additionally discloses who booked the seat
type AdminSeatResponse struct {
	SeatNumber  int    `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
	BookedBy    string `json:"booked_by,omitempty"`
}

func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		SeatNumber:  s.SeatNumber,
		IsAvailable: s.IsAvailable,
	}
}

func (s *Seat) ToAdminResponse() AdminSeatResponse {
	resp := AdminSeatResponse{
		SeatNumber:  s.SeatNumber,
		IsAvailable: s.IsAvailable,
	}
	if s.BookedBy != nil {
		resp.BookedBy = s.BookedBy.String()
	}
	return resp
}

// ReplaceSeatsRequest wholesale-overwrites a show's seat map
type ReplaceSeatsRequest struct {
	SeatNumbers []int `json:"seat_numbers" binding:"required,min=1,dive,min=1"`
}

// UnavailableError reports which requested seat numbers cannot be booked.
// Numbers that do not exist on the show and numbers already taken are
// reported identically.
type UnavailableError struct {
	SeatNumbers []int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable: %v", e.SeatNumbers)
}

// NewUnavailableError sorts the offending numbers for stable output
func NewUnavailableError(seatNumbers []int) *UnavailableError {
	sorted := append([]int(nil), seatNumbers...)
	sort.Ints(sorted)
	return &UnavailableError{SeatNumbers: sorted}
}
