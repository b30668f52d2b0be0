package assignment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment binds a worker to a patient under a billing role for a
// validity range. OverrideRate, when set, takes precedence over the
// worker's general rate for the role. Rows that accrued hours are
// never deleted in place: an edit closes the row (end_date) and
// inserts a replacement.
type Assignment struct {
	ID           string
	WorkerID     string
	PatientID    string
	RoleID       string
	OverrideRate *decimal.Decimal
	StartDate    time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	WorkerName  *string
	PatientName *string
	RoleCode    *string
	RoleName    *string
}

// ActiveOn reports whether the assignment's range covers date.
func (a Assignment) ActiveOn(date time.Time) bool {
	if date.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && date.After(*a.EndDate) {
		return false
	}
	return true
}
