package hours

import (
	"context"

	"github.com/shopspring/decimal"
)

type HoursRepository interface {
	// Upsert atomically inserts or updates the entry for
	// (segment_id, assignment_id) inside one transaction. When
	// maxHoursPerPatient is non-nil the patient's existing hour rows
	// in the segment are locked and summed first; the write is
	// rejected with ErrHoursLimitExceeded if the projected sum would
	// exceed the cap, leaving no persisted effect.
	Upsert(ctx context.Context, entry Entry, maxHoursPerPatient *decimal.Decimal) (Entry, error)
	GetBySegmentAssignment(ctx context.Context, segmentID, assignmentID string) (Entry, error)
	Delete(ctx context.Context, id string) error

	ListDetailedForPayroll(ctx context.Context, payrollID string) ([]LineDetail, error)
	TotalsByWorkerForPayroll(ctx context.Context, payrollID string) ([]WorkerTotal, error)
	TotalsByPatientForPayroll(ctx context.Context, payrollID string) ([]PatientTotal, error)
	TotalsByRoleForPayroll(ctx context.Context, payrollID string) ([]RoleTotal, error)
}
