package worker

import (
	"context"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/mhc-billing/payroll-backend-go/internal/service/rate"
	"github.com/shopspring/decimal"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
	resolver   *rate.Resolver
}

func NewWorkerService(workerRepo worker.WorkerRepository, resolver *rate.Resolver) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		resolver:   resolver,
	}
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.SupervisorID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.SupervisorID); err != nil {
			return worker.WorkerResponse{}, worker.ErrSupervisorNotFound
		}
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		SupervisorID: req.SupervisorID,
		IsActive:     true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if len(req.Rates) > 0 {
		rates, err := ratesFromRequests(created.ID, req.Rates)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
		if err := s.workerRepo.ReplaceRoleRates(ctx, created.ID, rates); err != nil {
			return worker.WorkerResponse{}, err
		}
	}

	return s.GetWorker(ctx, created.ID)
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	rates, err := s.workerRepo.GetRoleRates(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return mapToResponse(w, rates), nil
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, mapToResponse(w, nil))
	}

	return result, nil
}

func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.ID); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.SupervisorID != nil && *req.SupervisorID != "" {
		if _, err := s.workerRepo.GetByID(ctx, *req.SupervisorID); err != nil {
			return worker.WorkerResponse{}, worker.ErrSupervisorNotFound
		}
	}

	if err := s.workerRepo.Update(ctx, req); err != nil {
		return worker.WorkerResponse{}, err
	}

	// Replacing the rate set is all-or-nothing: the repository closes
	// out current rows and inserts the new ones in one transaction.
	if len(req.Rates) > 0 {
		rates, err := ratesFromRequests(req.ID, req.Rates)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
		if err := s.workerRepo.ReplaceRoleRates(ctx, req.ID, rates); err != nil {
			return worker.WorkerResponse{}, err
		}
	}

	return s.GetWorker(ctx, req.ID)
}

func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}

func (s *WorkerServiceImpl) GetGeneralRate(ctx context.Context, workerID, roleID string, asOf time.Time) (*decimal.Decimal, error) {
	return s.resolver.ResolveGeneralRate(ctx, workerID, roleID, asOf)
}

// ========== HELPERS ==========

func ratesFromRequests(workerID string, reqs []worker.RoleRateRequest) ([]worker.RoleRate, error) {
	rates := make([]worker.RoleRate, 0, len(reqs))
	for _, r := range reqs {
		startDate := time.Now().Truncate(24 * time.Hour)
		if r.StartDate != nil {
			parsed, err := time.Parse("2006-01-02", *r.StartDate)
			if err == nil {
				startDate = parsed
			}
		}

		var endDate *time.Time
		if r.EndDate != nil {
			parsed, err := time.Parse("2006-01-02", *r.EndDate)
			if err == nil {
				endDate = &parsed
			}
		}

		rates = append(rates, worker.RoleRate{
			WorkerID:    workerID,
			RoleID:      r.RoleID,
			GeneralRate: r.GeneralRate,
			StartDate:   startDate,
			EndDate:     endDate,
		})
	}
	return rates, nil
}

func mapToResponse(w worker.Worker, rates []worker.RoleRate) worker.WorkerResponse {
	resp := worker.WorkerResponse{
		ID:             w.ID,
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		SupervisorID:   w.SupervisorID,
		SupervisorName: w.SupervisorName,
		IsActive:       w.IsActive,
	}

	for _, r := range rates {
		var endDateStr *string
		if r.EndDate != nil {
			str := r.EndDate.Format("2006-01-02")
			endDateStr = &str
		}

		roleCode := ""
		roleName := ""
		if r.RoleCode != nil {
			roleCode = *r.RoleCode
		}
		if r.RoleName != nil {
			roleName = *r.RoleName
		}

		resp.Rates = append(resp.Rates, worker.RoleRateResponse{
			ID:          r.ID,
			RoleID:      r.RoleID,
			RoleCode:    roleCode,
			RoleName:    roleName,
			GeneralRate: r.GeneralRate,
			StartDate:   r.StartDate.Format("2006-01-02"),
			EndDate:     endDateStr,
		})
	}

	return resp
}
