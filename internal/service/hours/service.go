package hours

import (
	"context"

	"github.com/mhc-billing/payroll-backend-go/internal/config"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/service/rate"
	"github.com/shopspring/decimal"
)

type HoursServiceImpl struct {
	hoursRepo      hours.HoursRepository
	payrollRepo    payroll.PayrollRepository
	assignmentRepo assignment.AssignmentRepository
	resolver       *rate.Resolver
	cfg            config.PayrollConfig
}

func NewHoursService(
	hoursRepo hours.HoursRepository,
	payrollRepo payroll.PayrollRepository,
	assignmentRepo assignment.AssignmentRepository,
	resolver *rate.Resolver,
	cfg config.PayrollConfig,
) hours.HoursService {
	return &HoursServiceImpl{
		hoursRepo:      hoursRepo,
		payrollRepo:    payrollRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		cfg:            cfg,
	}
}

func (s *HoursServiceImpl) SetHours(ctx context.Context, req hours.SetHoursRequest) (hours.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return hours.EntryResponse{}, err
	}

	segment, err := s.payrollRepo.GetSegmentByID(ctx, req.SegmentID)
	if err != nil {
		return hours.EntryResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, segment.PayrollID)
	if err != nil {
		return hours.EntryResponse{}, err
	}
	if p.Status == payroll.PayrollStatusFinalized {
		return hours.EntryResponse{}, payroll.ErrPayrollLocked
	}

	a, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return hours.EntryResponse{}, err
	}

	// The rate is frozen on the line at write time. An explicit
	// used_rate in the request wins over resolution so corrections
	// can pin a value.
	var usedRate decimal.Decimal
	if req.UsedRate != nil {
		usedRate = *req.UsedRate
	} else {
		resolved, err := s.resolver.ResolveEffectiveRate(ctx, a, p.StartDate)
		if err != nil {
			return hours.EntryResponse{}, err
		}
		usedRate = resolved
	}

	entry := hours.Entry{
		SegmentID:    req.SegmentID,
		AssignmentID: req.AssignmentID,
		Hours:        req.Hours,
		UsedRate:     usedRate,
		Total:        hours.ComputeTotal(req.Hours, usedRate),
	}

	saved, err := s.hoursRepo.Upsert(ctx, entry, s.cfg.MaxHoursPerPatient)
	if err != nil {
		return hours.EntryResponse{}, err
	}

	return mapToResponse(saved), nil
}

func (s *HoursServiceImpl) BulkSetHours(ctx context.Context, req hours.BulkSetHoursRequest) (hours.BulkSetHoursResult, error) {
	if err := req.Validate(); err != nil {
		return hours.BulkSetHoursResult{}, err
	}

	result := hours.BulkSetHoursResult{}
	for i, line := range req.Lines {
		if _, err := s.SetHours(ctx, line); err != nil {
			if result.Errors == nil {
				result.Errors = make(map[int]string)
			}
			result.Errors[i] = err.Error()
			continue
		}
		result.Inserted++
	}

	return result, nil
}

func (s *HoursServiceImpl) GetEntry(ctx context.Context, segmentID, assignmentID string) (hours.EntryResponse, error) {
	entry, err := s.hoursRepo.GetBySegmentAssignment(ctx, segmentID, assignmentID)
	if err != nil {
		return hours.EntryResponse{}, err
	}

	return mapToResponse(entry), nil
}

func (s *HoursServiceImpl) DeleteEntry(ctx context.Context, segmentID, assignmentID string) error {
	segment, err := s.payrollRepo.GetSegmentByID(ctx, segmentID)
	if err != nil {
		return err
	}

	p, err := s.payrollRepo.GetByID(ctx, segment.PayrollID)
	if err != nil {
		return err
	}
	if p.Status == payroll.PayrollStatusFinalized {
		return payroll.ErrPayrollLocked
	}

	entry, err := s.hoursRepo.GetBySegmentAssignment(ctx, segmentID, assignmentID)
	if err != nil {
		return err
	}

	return s.hoursRepo.Delete(ctx, entry.ID)
}

func (s *HoursServiceImpl) ListLinesForPayroll(ctx context.Context, payrollID string) ([]hours.LineDetail, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.hoursRepo.ListDetailedForPayroll(ctx, payrollID)
}

func (s *HoursServiceImpl) TotalsByWorker(ctx context.Context, payrollID string) ([]hours.WorkerTotal, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.hoursRepo.TotalsByWorkerForPayroll(ctx, payrollID)
}

func (s *HoursServiceImpl) TotalsByPatient(ctx context.Context, payrollID string) ([]hours.PatientTotal, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.hoursRepo.TotalsByPatientForPayroll(ctx, payrollID)
}

func (s *HoursServiceImpl) TotalsByRole(ctx context.Context, payrollID string) ([]hours.RoleTotal, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.hoursRepo.TotalsByRoleForPayroll(ctx, payrollID)
}

// ========== HELPERS ==========

func mapToResponse(entry hours.Entry) hours.EntryResponse {
	return hours.EntryResponse{
		ID:           entry.ID,
		SegmentID:    entry.SegmentID,
		AssignmentID: entry.AssignmentID,
		Hours:        entry.Hours,
		UsedRate:     entry.UsedRate,
		Total:        entry.Total,
	}
}
