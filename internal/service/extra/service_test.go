package extra

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

type fakePaymentRepository struct {
	extra.PaymentRepository
	createFn  func(ctx context.Context, payment extra.Payment) (extra.Payment, error)
	getByIDFn func(ctx context.Context, id string) (extra.Payment, error)
	updateFn  func(ctx context.Context, req extra.UpdatePaymentRequest) error
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakePaymentRepository) Create(ctx context.Context, payment extra.Payment) (extra.Payment, error) {
	return f.createFn(ctx, payment)
}

func (f *fakePaymentRepository) GetByID(ctx context.Context, id string) (extra.Payment, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePaymentRepository) Update(ctx context.Context, req extra.UpdatePaymentRequest) error {
	return f.updateFn(ctx, req)
}

func (f *fakePaymentRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakePayrollRepository struct {
	payroll.PayrollRepository
	payrollStatus payroll.PayrollStatus
}

func (f *fakePayrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return payroll.Payroll{ID: id, Status: f.payrollStatus}, nil
}

type fakeWorkerRepository struct {
	worker.WorkerRepository
}

func (f *fakeWorkerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return worker.Worker{ID: id}, nil
}

type fakeSpecialRateRepository struct {
	specialrate.SpecialRateRepository
}

func (f *fakeSpecialRateRepository) GetByID(ctx context.Context, id string) (specialrate.SpecialRate, error) {
	return specialrate.SpecialRate{ID: id, Code: specialrate.CodeSupervision}, nil
}

func newService(paymentRepo *fakePaymentRepository, status payroll.PayrollStatus) extra.PaymentService {
	return NewPaymentService(
		paymentRepo,
		&fakePayrollRepository{payrollStatus: status},
		&fakeWorkerRepository{},
		&fakeSpecialRateRepository{},
	)
}

func TestCreatePayment_NegativeAmountIsADeduction(t *testing.T) {
	var created extra.Payment
	repo := &fakePaymentRepository{
		createFn: func(ctx context.Context, payment extra.Payment) (extra.Payment, error) {
			created = payment
			payment.ID = "x1"
			return payment, nil
		},
	}

	svc := newService(repo, payroll.PayrollStatusDraft)
	resp, err := svc.CreatePayment(context.Background(), extra.CreatePaymentRequest{
		PayrollID:     "p1",
		WorkerID:      "w1",
		SpecialRateID: "sr1",
		Amount:        dec("-150.00"),
		Notes:         strPtr("equipment deposit withheld"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(dec("-150.00")))
	assert.True(t, created.Amount.IsNegative())
}

func TestCreatePayment_OptionalReferencesStayNil(t *testing.T) {
	repo := &fakePaymentRepository{
		createFn: func(ctx context.Context, payment extra.Payment) (extra.Payment, error) {
			assert.Nil(t, payment.PatientID)
			assert.Nil(t, payment.SupervisedWorkerID)
			return payment, nil
		},
	}

	svc := newService(repo, payroll.PayrollStatusDraft)
	_, err := svc.CreatePayment(context.Background(), extra.CreatePaymentRequest{
		PayrollID:     "p1",
		WorkerID:      "w1",
		SpecialRateID: "sr1",
		Amount:        dec("75"),
	})
	require.NoError(t, err)
}

func TestCreatePayment_FinalizedPayrollLocked(t *testing.T) {
	repo := &fakePaymentRepository{
		createFn: func(ctx context.Context, payment extra.Payment) (extra.Payment, error) {
			t.Fatal("locked payroll must not accept extra payments")
			return extra.Payment{}, nil
		},
	}

	svc := newService(repo, payroll.PayrollStatusFinalized)
	_, err := svc.CreatePayment(context.Background(), extra.CreatePaymentRequest{
		PayrollID:     "p1",
		WorkerID:      "w1",
		SpecialRateID: "sr1",
		Amount:        dec("75"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestCreatePayment_MissingFieldsRejected(t *testing.T) {
	svc := newService(&fakePaymentRepository{}, payroll.PayrollStatusDraft)
	_, err := svc.CreatePayment(context.Background(), extra.CreatePaymentRequest{
		PayrollID: "p1",
		Amount:    dec("10"),
	})
	assert.Error(t, err)
}

func TestDeletePayment_FinalizedPayrollLocked(t *testing.T) {
	repo := &fakePaymentRepository{
		getByIDFn: func(ctx context.Context, id string) (extra.Payment, error) {
			return extra.Payment{ID: id, PayrollID: "p1"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatal("locked payroll must not allow deletes")
			return nil
		},
	}

	svc := newService(repo, payroll.PayrollStatusFinalized)
	err := svc.DeletePayment(context.Background(), "x1")
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestUpdatePayment_AmountEdit(t *testing.T) {
	var gotUpdate extra.UpdatePaymentRequest
	amount := dec("99.50")

	repo := &fakePaymentRepository{
		getByIDFn: func(ctx context.Context, id string) (extra.Payment, error) {
			return extra.Payment{ID: id, PayrollID: "p1", Amount: dec("75")}, nil
		},
		updateFn: func(ctx context.Context, req extra.UpdatePaymentRequest) error {
			gotUpdate = req
			return nil
		},
	}

	svc := newService(repo, payroll.PayrollStatusDraft)
	_, err := svc.UpdatePayment(context.Background(), extra.UpdatePaymentRequest{
		ID:     "x1",
		Amount: &amount,
	})
	require.NoError(t, err)
	require.NotNil(t, gotUpdate.Amount)
	assert.True(t, gotUpdate.Amount.Equal(amount))
}
