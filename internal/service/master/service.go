package master

import (
	"context"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/insurer"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
)

// MasterService bundles reference-data operations: insurers and the
// special-rate catalog.
type MasterService interface {
	// Insurers
	CreateInsurer(ctx context.Context, req insurer.CreateInsurerRequest) (insurer.InsurerResponse, error)
	ListInsurers(ctx context.Context, activeOnly bool) ([]insurer.InsurerResponse, error)
	UpdateInsurer(ctx context.Context, req insurer.UpdateInsurerRequest) (insurer.InsurerResponse, error)
	DeleteInsurer(ctx context.Context, id string) error

	// Special rates
	CreateSpecialRate(ctx context.Context, req specialrate.CreateSpecialRateRequest) (specialrate.SpecialRateResponse, error)
	ListSpecialRates(ctx context.Context, activeOnly bool) ([]specialrate.SpecialRateResponse, error)
	UpdateSpecialRate(ctx context.Context, req specialrate.UpdateSpecialRateRequest) (specialrate.SpecialRateResponse, error)
}

type MasterServiceImpl struct {
	insurerRepo     insurer.InsurerRepository
	specialRateRepo specialrate.SpecialRateRepository
}

func NewMasterService(
	insurerRepo insurer.InsurerRepository,
	specialRateRepo specialrate.SpecialRateRepository,
) MasterService {
	return &MasterServiceImpl{
		insurerRepo:     insurerRepo,
		specialRateRepo: specialRateRepo,
	}
}

// ========== INSURERS ==========

func (s *MasterServiceImpl) CreateInsurer(ctx context.Context, req insurer.CreateInsurerRequest) (insurer.InsurerResponse, error) {
	if err := req.Validate(); err != nil {
		return insurer.InsurerResponse{}, err
	}

	created, err := s.insurerRepo.Create(ctx, insurer.Insurer{
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		return insurer.InsurerResponse{}, err
	}

	return mapInsurer(created), nil
}

func (s *MasterServiceImpl) ListInsurers(ctx context.Context, activeOnly bool) ([]insurer.InsurerResponse, error) {
	insurers, err := s.insurerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]insurer.InsurerResponse, 0, len(insurers))
	for _, i := range insurers {
		result = append(result, mapInsurer(i))
	}

	return result, nil
}

func (s *MasterServiceImpl) UpdateInsurer(ctx context.Context, req insurer.UpdateInsurerRequest) (insurer.InsurerResponse, error) {
	if err := s.insurerRepo.Update(ctx, req); err != nil {
		return insurer.InsurerResponse{}, err
	}

	updated, err := s.insurerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return insurer.InsurerResponse{}, err
	}

	return mapInsurer(updated), nil
}

func (s *MasterServiceImpl) DeleteInsurer(ctx context.Context, id string) error {
	return s.insurerRepo.Delete(ctx, id)
}

// ========== SPECIAL RATES ==========

func (s *MasterServiceImpl) CreateSpecialRate(ctx context.Context, req specialrate.CreateSpecialRateRequest) (specialrate.SpecialRateResponse, error) {
	if err := req.Validate(); err != nil {
		return specialrate.SpecialRateResponse{}, err
	}

	created, err := s.specialRateRepo.Create(ctx, specialrate.SpecialRate{
		Code:        req.Code,
		Label:       req.Label,
		BillingCode: req.BillingCode,
		UnitRate:    req.UnitRate,
		IsActive:    true,
	})
	if err != nil {
		return specialrate.SpecialRateResponse{}, err
	}

	return mapSpecialRate(created), nil
}

func (s *MasterServiceImpl) ListSpecialRates(ctx context.Context, activeOnly bool) ([]specialrate.SpecialRateResponse, error) {
	rates, err := s.specialRateRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]specialrate.SpecialRateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, mapSpecialRate(r))
	}

	return result, nil
}

func (s *MasterServiceImpl) UpdateSpecialRate(ctx context.Context, req specialrate.UpdateSpecialRateRequest) (specialrate.SpecialRateResponse, error) {
	if err := s.specialRateRepo.Update(ctx, req); err != nil {
		return specialrate.SpecialRateResponse{}, err
	}

	updated, err := s.specialRateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return specialrate.SpecialRateResponse{}, err
	}

	return mapSpecialRate(updated), nil
}

// ========== HELPERS ==========

func mapInsurer(i insurer.Insurer) insurer.InsurerResponse {
	return insurer.InsurerResponse{
		ID:       i.ID,
		Name:     i.Name,
		IsActive: i.IsActive,
	}
}

func mapSpecialRate(r specialrate.SpecialRate) specialrate.SpecialRateResponse {
	return specialrate.SpecialRateResponse{
		ID:          r.ID,
		Code:        r.Code,
		Label:       r.Label,
		BillingCode: r.BillingCode,
		UnitRate:    r.UnitRate,
		IsActive:    r.IsActive,
	}
}
