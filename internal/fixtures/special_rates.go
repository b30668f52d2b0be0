package fixtures

import (
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

// GetDefaultSpecialRates returns the fixed-fee catalog seeded on a fresh
// installation. Unit rates are starting values; admins adjust them later.
func GetDefaultSpecialRates() []specialrate.SpecialRate {
	return []specialrate.SpecialRate{
		{
			Code:        specialrate.CodeInitialAssessment,
			Label:       "Initial Assessment",
			BillingCode: strPtr("90791"),
			UnitRate:    decimal.NewFromInt(150),
			IsActive:    true,
		},
		{
			Code:        specialrate.CodeReassessment,
			Label:       "Reassessment",
			BillingCode: strPtr("90792"),
			UnitRate:    decimal.NewFromInt(100),
			IsActive:    true,
		},
		{
			Code:        specialrate.CodeSupervision,
			Label:       "Supervision",
			BillingCode: nil,
			UnitRate:    decimal.NewFromInt(50),
			IsActive:    true,
		},
		{
			Code:        specialrate.CodePendingPositive,
			Label:       "Pending Adjustment (credit)",
			BillingCode: nil,
			UnitRate:    decimal.Zero,
			IsActive:    true,
		},
		{
			Code:        specialrate.CodePendingNegative,
			Label:       "Pending Adjustment (deduction)",
			BillingCode: nil,
			UnitRate:    decimal.Zero,
			IsActive:    true,
		},
	}
}
