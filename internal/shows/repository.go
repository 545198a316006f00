package shows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinebook/internal/reviews"
	"cinebook/internal/seats"
)

var ErrShowNotFound = errors.New("show not found")

type Repository interface {
	Create(ctx context.Context, show *Show) error
	GetByID(ctx context.Context, id uuid.UUID) (*Show, error)
	GetBySlug(ctx context.Context, slug string) (*Show, error)
	GetAll(ctx context.Context) ([]Show, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Show, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Show, error) {
	var show Show
	err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &show, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Show, error) {
	var show Show
	err := r.db.WithContext(ctx).Preload("Owner").Where("slug = ?", slug).First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &show, nil
}

// GetAll returns shows with owners populated, newest first
func (r *repository) GetAll(ctx context.Context) ([]Show, error) {
	var shows []Show
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Show, error) {
	res := r.db.WithContext(ctx).Model(&Show{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrShowNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the show and, by ownership, its seats and reviews.
// Bookings are an immutable ledger and are left in place.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("show_id = ?", id).Delete(&reviews.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}
		if err := tx.Where("show_id = ?", id).Delete(&seats.Seat{}).Error; err != nil {
			return fmt.Errorf("failed to delete seats: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&Show{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete show: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrShowNotFound
		}
		return nil
	})
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Show{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Show{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
