package report

import (
	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// HoursTotals - payroll-wide hour sums
type HoursTotals struct {
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ExtrasTotals - payroll-wide extra-payment sum (signed)
type ExtrasTotals struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// PayrollTotals - combined totals for a payroll run. Always computed
// fresh from persisted rows; volumes are single-agency scale.
type PayrollTotals struct {
	Hours      HoursTotals     `json:"hours"`
	Extras     ExtrasTotals    `json:"extras"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Breakdowns - per-dimension groupings for the report view
type Breakdowns struct {
	HoursByRole    []hours.RoleTotal    `json:"hours_by_role"`
	HoursByPatient []hours.PatientTotal `json:"hours_by_patient"`
	ExtrasByCode   []extra.CodeTotal    `json:"extras_by_code"`
}

// PayrollDetail - single read model composing everything a payroll
// report or pay-slip view needs
type PayrollDetail struct {
	Payroll    payroll.PayrollResponse     `json:"payroll"`
	Stats      payroll.PatientStatusCounts `json:"stats"`
	Totals     PayrollTotals               `json:"totals"`
	Breakdowns Breakdowns                  `json:"breakdowns"`
}

// WorkerSlip - per-worker pay slip: the worker's hour lines and
// extras inside one payroll plus their combined total
type WorkerSlip struct {
	WorkerID    string                `json:"worker_id"`
	WorkerName  string                `json:"worker_name"`
	HourLines   []hours.LineDetail    `json:"hour_lines"`
	Extras      []extra.PaymentDetail `json:"extras"`
	HoursTotal  decimal.Decimal       `json:"hours_total"`
	ExtrasTotal decimal.Decimal       `json:"extras_total"`
	GrandTotal  decimal.Decimal       `json:"grand_total"`
}
