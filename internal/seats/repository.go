package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByShow(ctx context.Context, showID uuid.UUID) ([]Seat, error)
	CreateBatch(ctx context.Context, seats []Seat) error
	Replace(ctx context.Context, showID uuid.UUID, seats []Seat) error
	DeleteByShow(ctx context.Context, showID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByShow(ctx context.Context, showID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Order("seat_number ASC").
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *repository) CreateBatch(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&seats).Error
}

// Replace deletes the prior seat map and inserts the new one in a single
// transaction, so readers never observe a half-replaced map.
func (r *repository) Replace(ctx context.Context, showID uuid.UUID, seats []Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("show_id = ?", showID).Delete(&Seat{}).Error; err != nil {
			return err
		}
		if len(seats) == 0 {
			return nil
		}
		return tx.Create(&seats).Error
	})
}

func (r *repository) DeleteByShow(ctx context.Context, showID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("show_id = ?", showID).Delete(&Seat{}).Error
}
