package hours

import "context"

type HoursService interface {
	// SetHours upserts the line for (segment, assignment). A zero
	// hours value keeps the line with a zero total; use DeleteEntry
	// to remove it.
	SetHours(ctx context.Context, req SetHoursRequest) (EntryResponse, error)
	BulkSetHours(ctx context.Context, req BulkSetHoursRequest) (BulkSetHoursResult, error)
	GetEntry(ctx context.Context, segmentID, assignmentID string) (EntryResponse, error)
	DeleteEntry(ctx context.Context, segmentID, assignmentID string) error

	ListLinesForPayroll(ctx context.Context, payrollID string) ([]LineDetail, error)
	TotalsByWorker(ctx context.Context, payrollID string) ([]WorkerTotal, error)
	TotalsByPatient(ctx context.Context, payrollID string) ([]PatientTotal, error)
	TotalsByRole(ctx context.Context, payrollID string) ([]RoleTotal, error)
}
