package report

import (
	"context"
	"sort"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
	hoursService   hours.HoursService
	extraService   extra.PaymentService
}

func NewReportService(
	payrollService payroll.PayrollService,
	hoursService hours.HoursService,
	extraService extra.PaymentService,
) report.ReportService {
	return &ReportServiceImpl{
		payrollService: payrollService,
		hoursService:   hoursService,
		extraService:   extraService,
	}
}

func (s *ReportServiceImpl) GetPayrollTotals(ctx context.Context, payrollID string) (report.PayrollTotals, error) {
	hourTotals, err := s.hoursService.TotalsByWorker(ctx, payrollID)
	if err != nil {
		return report.PayrollTotals{}, err
	}
	extraTotals, err := s.extraService.TotalsByWorker(ctx, payrollID)
	if err != nil {
		return report.PayrollTotals{}, err
	}

	return SumTotals(hourTotals, extraTotals), nil
}

func (s *ReportServiceImpl) GetPayrollDetail(ctx context.Context, payrollID string) (report.PayrollDetail, error) {
	p, err := s.payrollService.GetPayroll(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}

	stats, err := s.payrollService.GetPatientStatusCounts(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}

	totals, err := s.GetPayrollTotals(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}

	byRole, err := s.hoursService.TotalsByRole(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}
	byPatient, err := s.hoursService.TotalsByPatient(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}
	byCode, err := s.extraService.TotalsByCode(ctx, payrollID)
	if err != nil {
		return report.PayrollDetail{}, err
	}

	return report.PayrollDetail{
		Payroll: p,
		Stats:   stats,
		Totals:  totals,
		Breakdowns: report.Breakdowns{
			HoursByRole:    byRole,
			HoursByPatient: byPatient,
			ExtrasByCode:   byCode,
		},
	}, nil
}

func (s *ReportServiceImpl) GetWorkerSlips(ctx context.Context, payrollID string) ([]report.WorkerSlip, error) {
	lines, err := s.hoursService.ListLinesForPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	extras, err := s.extraService.ListForPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}

	return BuildWorkerSlips(lines, extras), nil
}

// SumTotals folds per-worker hour and extra totals into payroll-wide
// figures. Extras are signed, so the grand total can be below the
// hours total.
func SumTotals(hourTotals []hours.WorkerTotal, extraTotals []extra.WorkerTotal) report.PayrollTotals {
	totals := report.PayrollTotals{
		Hours:      report.HoursTotals{TotalHours: decimal.Zero, TotalAmount: decimal.Zero},
		Extras:     report.ExtrasTotals{TotalAmount: decimal.Zero},
		GrandTotal: decimal.Zero,
	}

	for _, t := range hourTotals {
		totals.Hours.TotalHours = totals.Hours.TotalHours.Add(t.TotalHours)
		totals.Hours.TotalAmount = totals.Hours.TotalAmount.Add(t.TotalAmount)
	}
	for _, t := range extraTotals {
		totals.Extras.TotalAmount = totals.Extras.TotalAmount.Add(t.TotalAmount)
	}

	totals.GrandTotal = totals.Hours.TotalAmount.Add(totals.Extras.TotalAmount)
	return totals
}

// BuildWorkerSlips groups hour lines and extras by worker into pay
// slips, sorted by worker name for stable output.
func BuildWorkerSlips(lines []hours.LineDetail, extras []extra.PaymentDetail) []report.WorkerSlip {
	byWorker := make(map[string]*report.WorkerSlip)

	slipFor := func(workerID, workerName string) *report.WorkerSlip {
		if slip, ok := byWorker[workerID]; ok {
			return slip
		}
		slip := &report.WorkerSlip{
			WorkerID:    workerID,
			WorkerName:  workerName,
			HoursTotal:  decimal.Zero,
			ExtrasTotal: decimal.Zero,
			GrandTotal:  decimal.Zero,
		}
		byWorker[workerID] = slip
		return slip
	}

	for _, line := range lines {
		slip := slipFor(line.WorkerID, line.WorkerName)
		slip.HourLines = append(slip.HourLines, line)
		slip.HoursTotal = slip.HoursTotal.Add(line.Total)
	}
	for _, payment := range extras {
		slip := slipFor(payment.WorkerID, payment.WorkerName)
		slip.Extras = append(slip.Extras, payment)
		slip.ExtrasTotal = slip.ExtrasTotal.Add(payment.Amount)
	}

	slips := make([]report.WorkerSlip, 0, len(byWorker))
	for _, slip := range byWorker {
		slip.GrandTotal = slip.HoursTotal.Add(slip.ExtrasTotal)
		slips = append(slips, *slip)
	}
	sort.Slice(slips, func(i, j int) bool {
		if slips[i].WorkerName != slips[j].WorkerName {
			return slips[i].WorkerName < slips[j].WorkerName
		}
		return slips[i].WorkerID < slips[j].WorkerID
	})

	return slips
}
