package extra

import "context"

type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error

	ListForPayroll(ctx context.Context, payrollID string) ([]PaymentDetail, error)
	TotalsByWorker(ctx context.Context, payrollID string) ([]WorkerTotal, error)
	TotalsByCode(ctx context.Context, payrollID string) ([]CodeTotal, error)
}
