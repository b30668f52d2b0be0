package assignment

import (
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAssignmentRequest struct {
	WorkerID     string           `json:"worker_id"`
	PatientID    string           `json:"patient_id"`
	RoleID       string           `json:"role_id"`
	OverrideRate *decimal.Decimal `json:"override_rate,omitempty"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PatientID) {
		errs = append(errs, validator.ValidationError{Field: "patient_id", Message: "is required"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "is required"})
	}
	if r.OverrideRate != nil && r.OverrideRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "override_rate", Message: "must be non-negative"})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		endDate, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if startOK && endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID            string           `json:"-"`
	OverrideRate  *decimal.Decimal `json:"override_rate,omitempty"`
	ClearOverride bool             `json:"clear_override,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.OverrideRate != nil && r.OverrideRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "override_rate", Message: "must be non-negative"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID           string           `json:"id"`
	WorkerID     string           `json:"worker_id"`
	WorkerName   string           `json:"worker_name,omitempty"`
	PatientID    string           `json:"patient_id"`
	PatientName  string           `json:"patient_name,omitempty"`
	RoleID       string           `json:"role_id"`
	RoleCode     string           `json:"role_code,omitempty"`
	RoleName     string           `json:"role_name,omitempty"`
	OverrideRate *decimal.Decimal `json:"override_rate,omitempty"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date,omitempty"`
}
