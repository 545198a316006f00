package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: cinebook:{module}:{operation}:{identifier}

const (
	// Listings change on admin writes only
	TTL_SHOWS_LIST   = 1 * time.Hour
	TTL_SHOW_DETAIL  = 2 * time.Hour
	// Seat availability changes on every booking
	TTL_SEATS_AVAILABLE = 2 * time.Minute
)

const CACHE_PREFIX = "cinebook"

const (
	CACHE_KEY_SHOWS_LIST  = CACHE_PREFIX + ":shows:list"
	CACHE_KEY_SHOW_DETAIL = CACHE_PREFIX + ":shows:detail:uuid:" // + show-id
	CACHE_KEY_SHOW_SEATS  = CACHE_PREFIX + ":seats:show:uuid:"   // + show-id
)

func BuildShowDetailKey(showID string) string {
	return CACHE_KEY_SHOW_DETAIL + showID
}

func BuildShowSeatsKey(showID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_SHOW_SEATS, showID)
}

// InvalidationPatternForShow matches every cached entry touching a show
func InvalidationPatternForShow(showID string) string {
	return CACHE_PREFIX + ":*" + showID + "*"
}
