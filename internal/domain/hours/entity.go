package hours

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - one hours line for a (segment, assignment) pair. The pair
// is unique; writes are atomic upserts. UsedRate is a frozen snapshot
// of the rate resolved at entry time so later rate edits never change
// recorded lines. Total is always recomputed server-side.
type Entry struct {
	ID           string
	SegmentID    string
	AssignmentID string
	Hours        decimal.Decimal
	UsedRate     decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// capTolerance absorbs float noise in hour sums when comparing
// against the per-patient cap.
var capTolerance = decimal.New(1, -6)

// ComputeTotal returns hours x rate rounded to 2 decimal places.
func ComputeTotal(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Mul(rate).Round(2)
}

// ExceedsCap reports whether replacing a prior contribution with
// proposed hours would push a patient's segment total past the cap.
// existing is the patient's current sum across all assignments in the
// segment, prior the entry's own current hours (zero on insert).
func ExceedsCap(existing, prior, proposed, cap decimal.Decimal) bool {
	projected := existing.Sub(prior).Add(proposed)
	return projected.Sub(cap).GreaterThan(capTolerance)
}
