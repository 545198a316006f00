package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSeatStateChanged signals that at least one requested seat was
	// taken between the availability read and the commit. The caller
	// re-reads the seat map to name the offenders.
	ErrSeatStateChanged = errors.New("seat state changed during booking")
)

type Repository interface {
	CreateWithSeatCommit(ctx context.Context, booking *Booking, seatNumbers []int) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSeatCommit claims the requested seats, inserts the booking
// with its seat rows, and bumps the user's lifetime ticket counter in a
// single transaction. The seat claim is a conditional update guarded by
// is_available, so two concurrent bookings for overlapping seats can
// never both commit: the loser's row count comes up short and the whole
// transaction rolls back with ErrSeatStateChanged.
func (r *repository) CreateWithSeatCommit(ctx context.Context, booking *Booking, seatNumbers []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table("seats").
			Where("show_id = ? AND seat_number IN ? AND is_available = ?", booking.ShowID, seatNumbers, true).
			Updates(map[string]interface{}{
				"is_available": false,
				"booked_by":    booking.UserID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(seatNumbers)) {
			return ErrSeatStateChanged
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		return tx.Table("users").
			Where("id = ?", booking.UserID).
			UpdateColumn("tickets", gorm.Expr("tickets + ?", booking.TotalSeats)).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Seats").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
