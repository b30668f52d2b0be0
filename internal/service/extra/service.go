package extra

import (
	"context"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
)

type PaymentServiceImpl struct {
	paymentRepo     extra.PaymentRepository
	payrollRepo     payroll.PayrollRepository
	workerRepo      worker.WorkerRepository
	specialRateRepo specialrate.SpecialRateRepository
}

func NewPaymentService(
	paymentRepo extra.PaymentRepository,
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	specialRateRepo specialrate.SpecialRateRepository,
) extra.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		payrollRepo:     payrollRepo,
		workerRepo:      workerRepo,
		specialRateRepo: specialRateRepo,
	}
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req extra.CreatePaymentRequest) (extra.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return extra.PaymentResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, req.PayrollID)
	if err != nil {
		return extra.PaymentResponse{}, err
	}
	if p.Status == payroll.PayrollStatusFinalized {
		return extra.PaymentResponse{}, payroll.ErrPayrollLocked
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return extra.PaymentResponse{}, err
	}
	if _, err := s.specialRateRepo.GetByID(ctx, req.SpecialRateID); err != nil {
		return extra.PaymentResponse{}, err
	}
	if req.SupervisedWorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.SupervisedWorkerID); err != nil {
			return extra.PaymentResponse{}, err
		}
	}

	created, err := s.paymentRepo.Create(ctx, extra.Payment{
		PayrollID:          req.PayrollID,
		WorkerID:           req.WorkerID,
		SpecialRateID:      req.SpecialRateID,
		PatientID:          req.PatientID,
		SupervisedWorkerID: req.SupervisedWorkerID,
		Amount:             req.Amount,
		Notes:              req.Notes,
	})
	if err != nil {
		return extra.PaymentResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (extra.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return extra.PaymentResponse{}, err
	}

	return mapToResponse(payment), nil
}

func (s *PaymentServiceImpl) UpdatePayment(ctx context.Context, req extra.UpdatePaymentRequest) (extra.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return extra.PaymentResponse{}, err
	}

	current, err := s.paymentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return extra.PaymentResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, current.PayrollID)
	if err != nil {
		return extra.PaymentResponse{}, err
	}
	if p.Status == payroll.PayrollStatusFinalized {
		return extra.PaymentResponse{}, payroll.ErrPayrollLocked
	}

	if req.SpecialRateID != nil {
		if _, err := s.specialRateRepo.GetByID(ctx, *req.SpecialRateID); err != nil {
			return extra.PaymentResponse{}, err
		}
	}

	if err := s.paymentRepo.Update(ctx, req); err != nil {
		return extra.PaymentResponse{}, err
	}

	return s.GetPayment(ctx, req.ID)
}

func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	current, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	p, err := s.payrollRepo.GetByID(ctx, current.PayrollID)
	if err != nil {
		return err
	}
	if p.Status == payroll.PayrollStatusFinalized {
		return payroll.ErrPayrollLocked
	}

	return s.paymentRepo.Delete(ctx, id)
}

func (s *PaymentServiceImpl) ListForPayroll(ctx context.Context, payrollID string) ([]extra.PaymentDetail, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListDetailedForPayroll(ctx, payrollID)
}

func (s *PaymentServiceImpl) TotalsByWorker(ctx context.Context, payrollID string) ([]extra.WorkerTotal, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.paymentRepo.TotalsByWorkerForPayroll(ctx, payrollID)
}

func (s *PaymentServiceImpl) TotalsByCode(ctx context.Context, payrollID string) ([]extra.CodeTotal, error) {
	if _, err := s.payrollRepo.GetByID(ctx, payrollID); err != nil {
		return nil, err
	}

	return s.paymentRepo.TotalsByCodeForPayroll(ctx, payrollID)
}

// ========== HELPERS ==========

func mapToResponse(payment extra.Payment) extra.PaymentResponse {
	return extra.PaymentResponse{
		ID:                 payment.ID,
		PayrollID:          payment.PayrollID,
		WorkerID:           payment.WorkerID,
		SpecialRateID:      payment.SpecialRateID,
		PatientID:          payment.PatientID,
		SupervisedWorkerID: payment.SupervisedWorkerID,
		Amount:             payment.Amount,
		Notes:              payment.Notes,
	}
}
