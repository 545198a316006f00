package database

import (
	"cinebook/internal/bookings"
	"cinebook/internal/reviews"
	"cinebook/internal/seats"
	"cinebook/internal/shows"
	"cinebook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&shows.Show{},
		&seats.Seat{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
		&reviews.Review{},
	)
}
