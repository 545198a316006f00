package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/shows"
	"cinebook/internal/users"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting CineBook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_seats",
		"bookings",
		"reviews",
		"seats",
		"shows",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds users, then shows with their seat maps
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedShows(userIDs["admin"]); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	// Stale seat maps in Redis would shadow the fresh rows
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users, all with password "qwerty"
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@cinebook.dev", users.RoleAdmin},
		{"user1", "Asha", "Rao", "asha.rao@cinebook.dev", users.RoleUser},
		{"user2", "Dev", "Mehta", "dev.mehta@cinebook.dev", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedShows creates sample screenings owned by the admin, each with its seat map
func (s *Seeder) SeedShows(adminID uuid.UUID) error {
	fmt.Println("  🎬 Seeding shows...")

	showsData := []struct {
		title       string
		summary     string
		director    string
		durationMin int
		genre       shows.Genre
		daysFromNow int
		seatCount   int
	}{
		{
			title:       "The Conjuring",
			summary:     "A family is terrorized by a dark presence in their secluded farmhouse.",
			director:    "James Wan",
			durationMin: 112,
			genre:       shows.GenreHorror,
			daysFromNow: 3,
			seatCount:   35,
		},
		{
			title:       "Mad Max: Fury Road",
			summary:     "In a post-apocalyptic wasteland, two rebels go on the run from a warlord.",
			director:    "George Miller",
			durationMin: 120,
			genre:       shows.GenreAction,
			daysFromNow: 5,
			seatCount:   35,
		},
		{
			title:       "Arrival",
			summary:     "A linguist races to decode an alien language before tensions boil over.",
			director:    "Denis Villeneuve",
			durationMin: 116,
			genre:       shows.GenreScienceFiction,
			daysFromNow: 7,
			seatCount:   35,
		},
		{
			title:       "The Grand Budapest Hotel",
			summary:     "A concierge and his lobby boy are framed for the theft of a priceless painting.",
			director:    "Wes Anderson",
			durationMin: 99,
			genre:       shows.GenreComedy,
			daysFromNow: 10,
			seatCount:   20,
		},
		{
			title:       "Before Sunrise",
			summary:     "Two strangers meet on a train and spend one night walking through Vienna.",
			director:    "Richard Linklater",
			durationMin: 101,
			genre:       shows.GenreRomance,
			daysFromNow: 14,
			seatCount:   35,
		},
	}

	for _, showData := range showsData {
		show := shows.Show{
			ID:          uuid.New(),
			Title:       showData.title,
			Slug:        slug.Make(showData.title),
			Summary:     showData.summary,
			Director:    showData.director,
			DurationMin: showData.durationMin,
			Genre:       showData.genre,
			Showtime:    time.Now().AddDate(0, 0, showData.daysFromNow),
			OwnerID:     adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&show).Error; err != nil {
			return fmt.Errorf("failed to create show %s: %w", show.Title, err)
		}

		if err := s.createSeatMap(show.ID, showData.seatCount); err != nil {
			return fmt.Errorf("failed to create seat map for %s: %w", show.Title, err)
		}

		fmt.Printf("    ✅ Created show: %s (%d seats)\n", show.Title, showData.seatCount)
	}

	return nil
}

// createSeatMap creates seats numbered 1..count, all available
func (s *Seeder) createSeatMap(showID uuid.UUID, count int) error {
	for i := 1; i <= count; i++ {
		seat := seats.Seat{
			ID:          uuid.New(),
			ShowID:      showID,
			SeatNumber:  i,
			IsAvailable: true,
		}

		if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
			return fmt.Errorf("failed to create seat %d: %w", i, err)
		}
	}

	return nil
}
