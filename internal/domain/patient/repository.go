package patient

import "context"

type PatientRepository interface {
	Create(ctx context.Context, patient Patient) (Patient, error)
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context, activeOnly bool) ([]Patient, error)
	Update(ctx context.Context, req UpdatePatientRequest) error
	Delete(ctx context.Context, id string) error
}
