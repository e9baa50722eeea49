package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// newInvoiceNumber builds a number like INV20260901-3FA2BC. Uniqueness is
// enforced by the invoice number index; callers retry once on collision.
func newInvoiceNumber(issued time.Time) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "INV" + issued.Format("20060102") + "-" + strings.ToUpper(raw[:6])
}
