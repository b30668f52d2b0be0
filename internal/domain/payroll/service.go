package payroll

import "context"

type PayrollService interface {
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context) ([]PayrollResponse, error)
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error

	FinalizePayroll(ctx context.Context, id string) (PayrollResponse, error)
	ReopenPayroll(ctx context.Context, id string) (PayrollResponse, error)

	ListSegments(ctx context.Context, payrollID string) ([]SegmentResponse, error)

	ListPatientPayrolls(ctx context.Context, payrollID string) ([]PatientPayrollResponse, error)
	// SeedPatients adds any active patients missing from the payroll's
	// scope; existing rows keep their processed flag. Returns the
	// number of rows added.
	SeedPatients(ctx context.Context, payrollID string) (int, error)
	SetPatientProcessed(ctx context.Context, req SetProcessedRequest) error
	GetPatientStatusCounts(ctx context.Context, payrollID string) (PatientStatusCounts, error)
}
