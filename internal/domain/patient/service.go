package patient

import "context"

// PatientService defines business logic for patient records
type PatientService interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (PatientResponse, error)
	GetPatient(ctx context.Context, id string) (PatientResponse, error)
	ListPatients(ctx context.Context, activeOnly bool) ([]PatientResponse, error)
	UpdatePatient(ctx context.Context, req UpdatePatientRequest) (PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}
