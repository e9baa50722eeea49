package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newBookingNumber builds a human-readable reference like BK20260831-A1B2C3.
// The suffix is random, so uniqueness is ultimately enforced by the store's
// unique index; the ledger retries once with a fresh suffix on collision.
func newBookingNumber(date time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("BK%s-%s", date.Format("20060102"), suffix)
}
