package payroll

import "github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"

type CreatePayrollRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	ID        string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
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

type PayrollResponse struct {
	ID        string            `json:"id"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Status    string            `json:"status"`
	Notes     *string           `json:"notes,omitempty"`
	Segments  []SegmentResponse `json:"segments,omitempty"`
}

type SegmentResponse struct {
	ID        string `json:"id"`
	PayrollID string `json:"payroll_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type PatientPayrollResponse struct {
	ID           string  `json:"id"`
	PayrollID    string  `json:"payroll_id"`
	PatientID    string  `json:"patient_id"`
	PatientName  string  `json:"patient_name,omitempty"`
	RecordNumber *string `json:"record_number,omitempty"`
	IsProcessed  bool    `json:"is_processed"`
}

type SetProcessedRequest struct {
	PayrollID   string `json:"-"`
	PatientID   string `json:"patient_id"`
	IsProcessed bool   `json:"is_processed"`
}

func (r *SetProcessedRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PatientID) {
		errs = append(errs, validator.ValidationError{Field: "patient_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PatientStatusCounts - processed/pending counters for a payroll run
type PatientStatusCounts struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Pending   int `json:"pending"`
}
