package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]Assignment, error)
	ListByWorker(ctx context.Context, workerID string, activeOnly bool) ([]Assignment, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) error
	Delete(ctx context.Context, id string) error

	// HasHours reports whether any hours entry references the assignment.
	HasHours(ctx context.Context, id string) (bool, error)
	// CloseAndReplace ends the old row and inserts its replacement in
	// one transaction. Used when an edit would change history that
	// already accrued hours.
	CloseAndReplace(ctx context.Context, oldID string, replacement Assignment) (Assignment, error)
}
