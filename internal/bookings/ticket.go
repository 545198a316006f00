package bookings

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// generateTicketNumber builds a human-readable unique ticket reference,
// e.g. "TKT-M2X41A9C-4F7K". The time component keeps numbers roughly
// sortable; the random suffix breaks ties between bookings created in
// the same millisecond.
func generateTicketNumber() (string, error) {
	base := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate ticket number: %w", err)
		}
		suffix[i] = charset[n.Int64()]
	}

	return fmt.Sprintf("TKT-%s-%s", base, string(suffix)), nil
}
