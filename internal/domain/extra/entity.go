package extra

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment - a non-hourly line billed within a payroll period:
// assessment fee, supervision fee, or manual adjustment. Amount is a
// signed decimal; negative amounts are deductions, not an error.
// PatientID and SupervisedWorkerID are independently optional.
type Payment struct {
	ID                 string
	PayrollID          string
	WorkerID           string
	SpecialRateID      string
	PatientID          *string
	SupervisedWorkerID *string
	Amount             decimal.Decimal
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	WorkerName           *string
	PatientName          *string
	SupervisedWorkerName *string
	SpecialRateCode      *string
	SpecialRateLabel     *string
}
