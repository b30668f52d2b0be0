package payroll

import (
	"context"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/config"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	patientRepo patient.PatientRepository
	cfg         config.PayrollConfig
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	patientRepo patient.PatientRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		patientRepo: patientRepo,
		cfg:         cfg,
	}
}

func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if err := s.checkOverlap(ctx, startDate, endDate, nil); err != nil {
		return payroll.PayrollResponse{}, err
	}

	segments := SplitIntoSegments(startDate, endDate, time.Weekday(s.cfg.WeekStartDay))

	// New runs start scoped to every active patient. Patients admitted
	// after creation are picked up by SeedPatients.
	patients, err := s.patientRepo.List(ctx, true)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	patientIDs := make([]string, 0, len(patients))
	for _, p := range patients {
		patientIDs = append(patientIDs, p.ID)
	}

	created, err := s.payrollRepo.CreateWithSegments(ctx, payroll.Payroll{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    payroll.PayrollStatusDraft,
		Notes:     req.Notes,
	}, segments, patientIDs)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return s.GetPayroll(ctx, created.ID)
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	segments, err := s.payrollRepo.ListSegments(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	resp := mapToResponse(p)
	resp.Segments = mapSegments(segments)
	return resp, nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		result = append(result, mapToResponse(p))
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	current, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Dates on a finalized run are immutable. Notes edits still go
	// through, so the request is not rejected outright: the date
	// fields are dropped.
	if current.Status == payroll.PayrollStatusFinalized {
		req.StartDate = nil
		req.EndDate = nil
	}

	datesChanged := false
	if req.StartDate != nil || req.EndDate != nil {
		startDate := current.StartDate
		endDate := current.EndDate
		if req.StartDate != nil {
			startDate, _ = time.Parse("2006-01-02", *req.StartDate)
		}
		if req.EndDate != nil {
			endDate, _ = time.Parse("2006-01-02", *req.EndDate)
		}
		if endDate.Before(startDate) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollInvalidRange
		}

		datesChanged = !startDate.Equal(current.StartDate) || !endDate.Equal(current.EndDate)
		if datesChanged {
			if err := s.checkOverlap(ctx, startDate, endDate, &req.ID); err != nil {
				return payroll.PayrollResponse{}, err
			}

			// Segments are regenerated below, which would orphan any
			// hours already recorded against the old ones.
			hasHours, err := s.payrollRepo.HasHours(ctx, req.ID)
			if err != nil {
				return payroll.PayrollResponse{}, err
			}
			if hasHours {
				return payroll.PayrollResponse{}, payroll.ErrPayrollHasHours
			}
		}
	}

	if err := s.payrollRepo.Update(ctx, req); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if datesChanged {
		updated, err := s.payrollRepo.GetByID(ctx, req.ID)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
		segments := SplitIntoSegments(updated.StartDate, updated.EndDate, time.Weekday(s.cfg.WeekStartDay))
		if err := s.payrollRepo.ReplaceSegments(ctx, req.ID, segments); err != nil {
			return payroll.PayrollResponse{}, err
		}
	}

	return s.GetPayroll(ctx, req.ID)
}

func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	current, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == payroll.PayrollStatusFinalized {
		return payroll.ErrPayrollLocked
	}

	return s.payrollRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) FinalizePayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.setStatus(ctx, id, payroll.PayrollStatusFinalized)
}

func (s *PayrollServiceImpl) ReopenPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return s.setStatus(ctx, id, payroll.PayrollStatusDraft)
}

func (s *PayrollServiceImpl) setStatus(ctx context.Context, id string, status payroll.PayrollStatus) (payroll.PayrollResponse, error) {
	current, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Idempotent: re-finalizing a finalized run (or reopening a
	// draft) is a no-op.
	if current.Status != status {
		if err := s.payrollRepo.UpdateStatus(ctx, id, status); err != nil {
			return payroll.PayrollResponse{}, err
		}
	}

	return s.GetPayroll(ctx, id)
}

func (s *PayrollServiceImpl) ListSegments(ctx context.Context, payrollID string) ([]payroll.SegmentResponse, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	segments, err := s.payrollRepo.ListSegments(ctx, payrollID)
	if err != nil {
		return nil, err
	}

	return mapSegments(segments), nil
}

func (s *PayrollServiceImpl) ListPatientPayrolls(ctx context.Context, payrollID string) ([]payroll.PatientPayrollResponse, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	rows, err := s.payrollRepo.ListPatientPayrolls(ctx, payrollID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PatientPayrollResponse, 0, len(rows))
	for _, pp := range rows {
		resp := payroll.PatientPayrollResponse{
			ID:           pp.ID,
			PayrollID:    pp.PayrollID,
			PatientID:    pp.PatientID,
			IsProcessed:  pp.IsProcessed,
			RecordNumber: pp.RecordNumber,
		}
		if pp.PatientName != nil {
			resp.PatientName = *pp.PatientName
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *PayrollServiceImpl) SeedPatients(ctx context.Context, payrollID string) (int, error) {
	current, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return 0, err
	}
	if current.Status == payroll.PayrollStatusFinalized {
		return 0, payroll.ErrPayrollLocked
	}

	patients, err := s.patientRepo.List(ctx, true)
	if err != nil {
		return 0, err
	}
	patientIDs := make([]string, 0, len(patients))
	for _, p := range patients {
		patientIDs = append(patientIDs, p.ID)
	}

	return s.payrollRepo.SeedPatients(ctx, payrollID, patientIDs)
}

func (s *PayrollServiceImpl) SetPatientProcessed(ctx context.Context, req payroll.SetProcessedRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.payrollRepo.GetByID(ctx, req.PayrollID); err != nil {
		return err
	}

	return s.payrollRepo.SetPatientProcessed(ctx, req.PayrollID, req.PatientID, req.IsProcessed)
}

func (s *PayrollServiceImpl) GetPatientStatusCounts(ctx context.Context, payrollID string) (payroll.PatientStatusCounts, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return payroll.PatientStatusCounts{}, err
	}

	return s.payrollRepo.CountsByStatus(ctx, payrollID)
}

func (s *PayrollServiceImpl) checkOverlap(ctx context.Context, start, end time.Time, excludeID *string) error {
	existing, err := s.payrollRepo.ListOverlapping(ctx, start, end, excludeID)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if payroll.Overlaps(start, end, p.StartDate, p.EndDate) {
			return payroll.ErrPayrollOverlap
		}
	}
	return nil
}

// SplitIntoSegments cuts [start, end] into week segments. Boundaries
// fall on weekStart, so the first and last segment may be partial
// weeks. A range shorter than a week yields a single segment.
func SplitIntoSegments(start, end time.Time, weekStart time.Weekday) []payroll.Segment {
	var segments []payroll.Segment

	segStart := start
	for !segStart.After(end) {
		// Day before the next weekStart on or after segStart+1.
		daysUntil := (int(weekStart) - int(segStart.Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		segEnd := segStart.AddDate(0, 0, daysUntil-1)
		if segEnd.After(end) {
			segEnd = end
		}

		segments = append(segments, payroll.Segment{
			StartDate: segStart,
			EndDate:   segEnd,
		})
		segStart = segEnd.AddDate(0, 0, 1)
	}

	return segments
}

// ========== HELPERS ==========

func mapToResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:        p.ID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
		Notes:     p.Notes,
	}
}

func mapSegments(segments []payroll.Segment) []payroll.SegmentResponse {
	result := make([]payroll.SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		result = append(result, payroll.SegmentResponse{
			ID:        seg.ID,
			PayrollID: seg.PayrollID,
			StartDate: seg.StartDate.Format("2006-01-02"),
			EndDate:   seg.EndDate.Format("2006-01-02"),
		})
	}
	return result
}
