package assignment

import "context"

// AssignmentService defines business logic for worker-patient-role
// assignments
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, id string) (AssignmentResponse, error)
	ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]AssignmentResponse, error)
	ListByWorker(ctx context.Context, workerID string, activeOnly bool) ([]AssignmentResponse, error)
	// UpdateAssignment edits in place while no hours reference the
	// row; once hours exist it closes the row and inserts a
	// replacement instead, preserving recorded history.
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	// DeleteAssignment hard-deletes only rows without hours; rows with
	// recorded hours are soft-ended instead.
	DeleteAssignment(ctx context.Context, id string) error
}
