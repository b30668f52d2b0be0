package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// CreateWithSegments inserts the payroll, its segments, and the
	// initial patient scope rows in one transaction.
	CreateWithSegments(ctx context.Context, p Payroll, segments []Segment, patientIDs []string) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context) ([]Payroll, error)
	// ListOverlapping returns payrolls whose range intersects
	// [start, end], excluding excludeID when non-nil.
	ListOverlapping(ctx context.Context, start, end time.Time, excludeID *string) ([]Payroll, error)
	Update(ctx context.Context, req UpdatePayrollRequest) error
	UpdateStatus(ctx context.Context, id string, status PayrollStatus) error
	Delete(ctx context.Context, id string) error

	// Segments
	ListSegments(ctx context.Context, payrollID string) ([]Segment, error)
	GetSegmentByID(ctx context.Context, id string) (Segment, error)
	// ReplaceSegments swaps the payroll's segment set in one
	// transaction. Callers must ensure no hours reference the old
	// segments first.
	ReplaceSegments(ctx context.Context, payrollID string, segments []Segment) error
	// HasHours reports whether any segment of the payroll carries an
	// hours entry.
	HasHours(ctx context.Context, payrollID string) (bool, error)

	// Patient scope
	SeedPatients(ctx context.Context, payrollID string, patientIDs []string) (int, error)
	ListPatientPayrolls(ctx context.Context, payrollID string) ([]PatientPayroll, error)
	SetPatientProcessed(ctx context.Context, payrollID, patientID string, processed bool) error
	CountsByStatus(ctx context.Context, payrollID string) (PatientStatusCounts, error)
}
