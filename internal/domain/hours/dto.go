package hours

import (
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetHoursRequest struct {
	SegmentID    string           `json:"segment_id"`
	AssignmentID string           `json:"assignment_id"`
	Hours        decimal.Decimal  `json:"hours"`
	UsedRate     *decimal.Decimal `json:"used_rate,omitempty"`
}

func (r *SetHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SegmentID) {
		errs = append(errs, validator.ValidationError{Field: "segment_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "is required"})
	}
	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}
	if r.UsedRate != nil && r.UsedRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "used_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkSetHoursRequest struct {
	Lines []SetHoursRequest `json:"lines"`
}

func (r *BulkSetHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Lines) == 0 {
		errs = append(errs, validator.ValidationError{Field: "lines", Message: "at least one line is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkSetHoursResult reports a continue-on-error import: failed lines
// are collected by index, successful ones still land.
type BulkSetHoursResult struct {
	Inserted int            `json:"inserted"`
	Errors   map[int]string `json:"errors,omitempty"`
}

type EntryResponse struct {
	ID           string          `json:"id"`
	SegmentID    string          `json:"segment_id"`
	AssignmentID string          `json:"assignment_id"`
	Hours        decimal.Decimal `json:"hours"`
	UsedRate     decimal.Decimal `json:"used_rate"`
	Total        decimal.Decimal `json:"total"`
}

// LineDetail - display row joined through assignment and segment
type LineDetail struct {
	EntryID      string          `json:"entry_id"`
	SegmentID    string          `json:"segment_id"`
	SegmentStart string          `json:"segment_start"`
	SegmentEnd   string          `json:"segment_end"`
	AssignmentID string          `json:"assignment_id"`
	WorkerID     string          `json:"worker_id"`
	WorkerName   string          `json:"worker_name"`
	PatientID    string          `json:"patient_id"`
	PatientName  string          `json:"patient_name"`
	RoleCode     string          `json:"role_code"`
	Hours        decimal.Decimal `json:"hours"`
	UsedRate     decimal.Decimal `json:"used_rate"`
	Total        decimal.Decimal `json:"total"`
}

type WorkerTotal struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PatientTotal struct {
	PatientID   string          `json:"patient_id"`
	PatientName string          `json:"patient_name"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type RoleTotal struct {
	RoleID      string          `json:"role_id"`
	RoleCode    string          `json:"role_code"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
