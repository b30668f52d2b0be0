package assignment

import (
	"context"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/role"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
)

type AssignmentServiceImpl struct {
	assignmentRepo assignment.AssignmentRepository
	workerRepo     worker.WorkerRepository
	patientRepo    patient.PatientRepository
	roleRepo       role.RoleRepository
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	workerRepo worker.WorkerRepository,
	patientRepo patient.PatientRepository,
	roleRepo role.RoleRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		patientRepo:    patientRepo,
		roleRepo:       roleRepo,
	}
}

func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err == nil {
			endDate = &parsed
		}
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		WorkerID:     req.WorkerID,
		PatientID:    req.PatientID,
		RoleID:       req.RoleID,
		OverrideRate: req.OverrideRate,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, created.ID)
}

func (s *AssignmentServiceImpl) GetAssignment(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return mapToResponse(a), nil
}

func (s *AssignmentServiceImpl) ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByPatient(ctx, patientID, activeOnly)
	if err != nil {
		return nil, err
	}

	return mapToResponses(assignments), nil
}

func (s *AssignmentServiceImpl) ListByWorker(ctx context.Context, workerID string, activeOnly bool) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByWorker(ctx, workerID, activeOnly)
	if err != nil {
		return nil, err
	}

	return mapToResponses(assignments), nil
}

func (s *AssignmentServiceImpl) UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	current, err := s.assignmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	hasHours, err := s.assignmentRepo.HasHours(ctx, req.ID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if !hasHours {
		if err := s.assignmentRepo.Update(ctx, req); err != nil {
			return assignment.AssignmentResponse{}, err
		}
		return s.GetAssignment(ctx, req.ID)
	}

	// Hours already reference this row. Close it as of the
	// replacement's start and insert a new row carrying the edit, so
	// recorded lines keep pointing at the range they were billed
	// under.
	replacement := assignment.Assignment{
		WorkerID:     current.WorkerID,
		PatientID:    current.PatientID,
		RoleID:       current.RoleID,
		OverrideRate: current.OverrideRate,
		StartDate:    current.StartDate,
		EndDate:      current.EndDate,
	}
	if req.OverrideRate != nil {
		replacement.OverrideRate = req.OverrideRate
	}
	if req.ClearOverride {
		replacement.OverrideRate = nil
	}
	if req.StartDate != nil {
		if parsed, err := time.Parse("2006-01-02", *req.StartDate); err == nil {
			replacement.StartDate = parsed
		}
	}
	if req.EndDate != nil {
		if parsed, err := time.Parse("2006-01-02", *req.EndDate); err == nil {
			replacement.EndDate = &parsed
		}
	}

	created, err := s.assignmentRepo.CloseAndReplace(ctx, req.ID, replacement)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return s.GetAssignment(ctx, created.ID)
}

func (s *AssignmentServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	hasHours, err := s.assignmentRepo.HasHours(ctx, id)
	if err != nil {
		return err
	}

	if hasHours {
		// Soft-end instead of deleting out from under recorded hours.
		today := time.Now().Truncate(24 * time.Hour).Format("2006-01-02")
		return s.assignmentRepo.Update(ctx, assignment.UpdateAssignmentRequest{
			ID:      id,
			EndDate: &today,
		})
	}

	return s.assignmentRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToResponse(a assignment.Assignment) assignment.AssignmentResponse {
	var endDateStr *string
	if a.EndDate != nil {
		str := a.EndDate.Format("2006-01-02")
		endDateStr = &str
	}

	resp := assignment.AssignmentResponse{
		ID:           a.ID,
		WorkerID:     a.WorkerID,
		PatientID:    a.PatientID,
		RoleID:       a.RoleID,
		OverrideRate: a.OverrideRate,
		StartDate:    a.StartDate.Format("2006-01-02"),
		EndDate:      endDateStr,
	}

	if a.WorkerName != nil {
		resp.WorkerName = *a.WorkerName
	}
	if a.PatientName != nil {
		resp.PatientName = *a.PatientName
	}
	if a.RoleCode != nil {
		resp.RoleCode = *a.RoleCode
	}
	if a.RoleName != nil {
		resp.RoleName = *a.RoleName
	}

	return resp
}

func mapToResponses(assignments []assignment.Assignment) []assignment.AssignmentResponse {
	result := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, mapToResponse(a))
	}
	return result
}
