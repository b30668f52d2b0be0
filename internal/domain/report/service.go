package report

import "context"

type ReportService interface {
	GetPayrollTotals(ctx context.Context, payrollID string) (PayrollTotals, error)
	GetPayrollDetail(ctx context.Context, payrollID string) (PayrollDetail, error)
	GetWorkerSlips(ctx context.Context, payrollID string) ([]WorkerSlip, error)
}
