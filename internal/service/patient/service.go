package patient

import (
	"context"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/insurer"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
)

type PatientServiceImpl struct {
	patientRepo patient.PatientRepository
	insurerRepo insurer.InsurerRepository
}

func NewPatientService(
	patientRepo patient.PatientRepository,
	insurerRepo insurer.InsurerRepository,
) patient.PatientService {
	return &PatientServiceImpl{
		patientRepo: patientRepo,
		insurerRepo: insurerRepo,
	}
}

func (s *PatientServiceImpl) CreatePatient(ctx context.Context, req patient.CreatePatientRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	if req.InsurerID != nil {
		if _, err := s.insurerRepo.GetByID(ctx, *req.InsurerID); err != nil {
			return patient.PatientResponse{}, patient.ErrInsurerNotFound
		}
	}

	created, err := s.patientRepo.Create(ctx, patient.Patient{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RecordNumber: req.RecordNumber,
		InsurerID:    req.InsurerID,
		IsActive:     true,
	})
	if err != nil {
		return patient.PatientResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PatientServiceImpl) GetPatient(ctx context.Context, id string) (patient.PatientResponse, error) {
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return patient.PatientResponse{}, err
	}

	return mapToResponse(p), nil
}

func (s *PatientServiceImpl) ListPatients(ctx context.Context, activeOnly bool) ([]patient.PatientResponse, error) {
	patients, err := s.patientRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]patient.PatientResponse, 0, len(patients))
	for _, p := range patients {
		result = append(result, mapToResponse(p))
	}

	return result, nil
}

func (s *PatientServiceImpl) UpdatePatient(ctx context.Context, req patient.UpdatePatientRequest) (patient.PatientResponse, error) {
	if err := req.Validate(); err != nil {
		return patient.PatientResponse{}, err
	}

	if req.InsurerID != nil && *req.InsurerID != "" {
		if _, err := s.insurerRepo.GetByID(ctx, *req.InsurerID); err != nil {
			return patient.PatientResponse{}, patient.ErrInsurerNotFound
		}
	}

	if err := s.patientRepo.Update(ctx, req); err != nil {
		return patient.PatientResponse{}, err
	}

	return s.GetPatient(ctx, req.ID)
}

func (s *PatientServiceImpl) DeletePatient(ctx context.Context, id string) error {
	return s.patientRepo.Delete(ctx, id)
}

func mapToResponse(p patient.Patient) patient.PatientResponse {
	return patient.PatientResponse{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		RecordNumber: p.RecordNumber,
		InsurerID:    p.InsurerID,
		InsurerName:  p.InsurerName,
		IsActive:     p.IsActive,
	}
}
