package patient

import "github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"

type CreatePatientRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	RecordNumber *string `json:"record_number,omitempty"`
	InsurerID    *string `json:"insurer_id,omitempty"`
}

func (r *CreatePatientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.RecordNumber != nil && len(*r.RecordNumber) > 50 {
		errs = append(errs, validator.ValidationError{Field: "record_number", Message: "must not exceed 50 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePatientRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	RecordNumber *string `json:"record_number,omitempty"`
	InsurerID    *string `json:"insurer_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdatePatientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PatientResponse struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	RecordNumber *string `json:"record_number,omitempty"`
	InsurerID    *string `json:"insurer_id,omitempty"`
	InsurerName  *string `json:"insurer_name,omitempty"`
	IsActive     bool    `json:"is_active"`
}
