package extra

import (
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	PayrollID          string          `json:"payroll_id"`
	WorkerID           string          `json:"worker_id"`
	SpecialRateID      string          `json:"special_rate_id"`
	PatientID          *string         `json:"patient_id,omitempty"`
	SupervisedWorkerID *string         `json:"supervised_worker_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Notes              *string         `json:"notes,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_id", Message: "is required"})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.SpecialRateID) {
		errs = append(errs, validator.ValidationError{Field: "special_rate_id", Message: "is required"})
	}
	// Amount is intentionally unconstrained: negative amounts are
	// deductions and a first-class case.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	ID                 string           `json:"-"`
	SpecialRateID      *string          `json:"special_rate_id,omitempty"`
	PatientID          *string          `json:"patient_id,omitempty"`
	SupervisedWorkerID *string          `json:"supervised_worker_id,omitempty"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.SpecialRateID != nil && validator.IsEmpty(*r.SpecialRateID) {
		errs = append(errs, validator.ValidationError{Field: "special_rate_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID                 string          `json:"id"`
	PayrollID          string          `json:"payroll_id"`
	WorkerID           string          `json:"worker_id"`
	SpecialRateID      string          `json:"special_rate_id"`
	PatientID          *string         `json:"patient_id,omitempty"`
	SupervisedWorkerID *string         `json:"supervised_worker_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Notes              *string         `json:"notes,omitempty"`
}

// PaymentDetail - display row joined to worker/patient names and the
// special-rate catalog
type PaymentDetail struct {
	ID                   string          `json:"id"`
	PayrollID            string          `json:"payroll_id"`
	WorkerID             string          `json:"worker_id"`
	WorkerName           string          `json:"worker_name"`
	PatientID            *string         `json:"patient_id,omitempty"`
	PatientName          *string         `json:"patient_name,omitempty"`
	SupervisedWorkerID   *string         `json:"supervised_worker_id,omitempty"`
	SupervisedWorkerName *string         `json:"supervised_worker_name,omitempty"`
	SpecialRateCode      string          `json:"special_rate_code"`
	SpecialRateLabel     string          `json:"special_rate_label"`
	Amount               decimal.Decimal `json:"amount"`
	Notes                *string         `json:"notes,omitempty"`
}

type WorkerTotal struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CodeTotal - per special-rate-code totals, joined to the catalog for
// label/unit-rate context
type CodeTotal struct {
	SpecialRateID string          `json:"special_rate_id"`
	Code          string          `json:"code"`
	Label         string          `json:"label"`
	UnitRate      decimal.Decimal `json:"unit_rate"`
	Count         int             `json:"count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
