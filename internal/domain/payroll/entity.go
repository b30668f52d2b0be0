package payroll

import "time"

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusFinalized PayrollStatus = "finalized"
)

// Payroll - a billing period. Dates are inclusive and must not
// overlap other payroll periods (touching ranges count as overlap).
type Payroll struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Status    PayrollStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Segment - sub-range of a payroll period (one week of a biweekly
// payroll). Hour lines are recorded against segments; the per-patient
// hour cap applies per segment.
type Segment struct {
	ID        string
	PayrollID string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

// PatientPayroll marks a patient as in scope for a payroll run and
// whether their lines have been reviewed/processed.
type PatientPayroll struct {
	ID          string
	PayrollID   string
	PatientID   string
	IsProcessed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	PatientName  *string
	RecordNumber *string
}

// Overlaps reports whether [s1,e1] intersects [s2,e2], both ranges
// inclusive. Touching ranges overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}
