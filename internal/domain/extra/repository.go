package extra

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, payment Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	Update(ctx context.Context, req UpdatePaymentRequest) error
	Delete(ctx context.Context, id string) error

	ListDetailedForPayroll(ctx context.Context, payrollID string) ([]PaymentDetail, error)
	TotalsByWorkerForPayroll(ctx context.Context, payrollID string) ([]WorkerTotal, error)
	TotalsByCodeForPayroll(ctx context.Context, payrollID string) ([]CodeTotal, error)
}
