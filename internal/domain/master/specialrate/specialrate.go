package specialrate

import (
	"context"
	"errors"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SpecialRate - catalog entry for a fixed-fee concept (assessments,
// supervision, manual adjustments). Read-mostly reference data.
type SpecialRate struct {
	ID          string
	Code        string
	Label       string
	BillingCode *string
	UnitRate    decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Catalog codes seeded at installation.
const (
	CodeInitialAssessment = "initial_assessment"
	CodeReassessment      = "reassessment"
	CodeSupervision       = "supervision"
	CodePendingPositive   = "pending_positive"
	CodePendingNegative   = "pending_negative"
)

var (
	ErrSpecialRateNotFound   = errors.New("special rate not found")
	ErrSpecialRateCodeExists = errors.New("special rate with this code already exists")
)

type CreateSpecialRateRequest struct {
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	BillingCode *string         `json:"billing_code,omitempty"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
}

func (r *CreateSpecialRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	} else if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-30 lowercase letters, digits or underscores"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSpecialRateRequest struct {
	ID          string           `json:"-"`
	Label       *string          `json:"label,omitempty"`
	BillingCode *string          `json:"billing_code,omitempty"`
	UnitRate    *decimal.Decimal `json:"unit_rate,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

type SpecialRateResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	BillingCode *string         `json:"billing_code,omitempty"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	IsActive    bool            `json:"is_active"`
}

type SpecialRateRepository interface {
	Create(ctx context.Context, rate SpecialRate) (SpecialRate, error)
	// Seed inserts catalog rows, skipping codes that already exist.
	Seed(ctx context.Context, rates []SpecialRate) error
	GetByID(ctx context.Context, id string) (SpecialRate, error)
	GetByCode(ctx context.Context, code string) (SpecialRate, error)
	List(ctx context.Context, activeOnly bool) ([]SpecialRate, error)
	Update(ctx context.Context, req UpdateSpecialRateRequest) error
}
