package worker

import (
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	SupervisorID *string           `json:"supervisor_id,omitempty"`
	Rates        []RoleRateRequest `json:"rates,omitempty"`
}

// RoleRateRequest declares a general rate for one role. An empty
// start_date defaults to today.
type RoleRateRequest struct {
	RoleID      string          `json:"role_id"`
	GeneralRate decimal.Decimal `json:"general_rate"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
}

func (r *RoleRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "is required"})
	}
	if r.GeneralRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "general_rate", Message: "must be non-negative"})
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

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	for _, rate := range r.Rates {
		if err := rate.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID           string            `json:"-"`
	FirstName    *string           `json:"first_name,omitempty"`
	LastName     *string           `json:"last_name,omitempty"`
	SupervisorID *string           `json:"supervisor_id,omitempty"`
	IsActive     *bool             `json:"is_active,omitempty"`
	Rates        []RoleRateRequest `json:"rates,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	for _, rate := range r.Rates {
		if err := rate.Validate(); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, ve...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string             `json:"id"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	SupervisorID   *string            `json:"supervisor_id,omitempty"`
	SupervisorName *string            `json:"supervisor_name,omitempty"`
	IsActive       bool               `json:"is_active"`
	Rates          []RoleRateResponse `json:"rates,omitempty"`
}

type RoleRateResponse struct {
	ID          string          `json:"id"`
	RoleID      string          `json:"role_id"`
	RoleCode    string          `json:"role_code"`
	RoleName    string          `json:"role_name"`
	GeneralRate decimal.Decimal `json:"general_rate"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
}
