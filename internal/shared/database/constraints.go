package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database-level guards that back up the
// application's booking checks
func MigrateConstraints(db *gorm.DB) error {
	// uuid_generate_v4() used by primary key defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	// One row per seat per show. The conditional update already
	// serializes bookings; this constraint stops a bad seat-map write
	// from creating duplicates.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_show_seat
		ON seats (show_id, seat_number);
	`).Error; err != nil {
		return err
	}

	// Booking lookups by user are the hot read path
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC);
	`).Error
}
