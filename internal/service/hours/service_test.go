package hours

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhc-billing/payroll-backend-go/internal/config"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/mhc-billing/payroll-backend-go/internal/service/rate"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeHoursRepository struct {
	hours.HoursRepository
	upsertFn func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error)
}

func (f *fakeHoursRepository) Upsert(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
	return f.upsertFn(ctx, entry, maxHoursPerPatient)
}

type fakePayrollRepository struct {
	payroll.PayrollRepository
	payrollStatus payroll.PayrollStatus
}

func (f *fakePayrollRepository) GetSegmentByID(ctx context.Context, id string) (payroll.Segment, error) {
	return payroll.Segment{
		ID:        id,
		PayrollID: "p1",
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-07"),
	}, nil
}

func (f *fakePayrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return payroll.Payroll{
		ID:        id,
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-14"),
		Status:    f.payrollStatus,
	}, nil
}

type fakeAssignmentRepository struct {
	assignment.AssignmentRepository
	assignment assignment.Assignment
}

func (f *fakeAssignmentRepository) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	a := f.assignment
	a.ID = id
	return a, nil
}

type fakeWorkerRepository struct {
	worker.WorkerRepository
	rates []worker.RoleRate
}

func (f *fakeWorkerRepository) GetRatesForRole(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
	return f.rates, nil
}

func newService(
	hoursRepo *fakeHoursRepository,
	payrollRepo *fakePayrollRepository,
	assignmentRepo *fakeAssignmentRepository,
	workerRepo *fakeWorkerRepository,
	maxHours *decimal.Decimal,
) hours.HoursService {
	if workerRepo == nil {
		workerRepo = &fakeWorkerRepository{}
	}
	return NewHoursService(
		hoursRepo,
		payrollRepo,
		assignmentRepo,
		rate.NewResolver(workerRepo),
		config.PayrollConfig{WeekStartDay: int(time.Monday), MaxHoursPerPatient: maxHours},
	)
}

func TestSetHours_ComputesTotalFromResolvedRate(t *testing.T) {
	override := dec("25.50")
	var saved hours.Entry

	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			saved = entry
			entry.ID = "e1"
			return entry, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{
			WorkerID:     "w1",
			PatientID:    "pt1",
			RoleID:       "r1",
			OverrideRate: &override,
			StartDate:    date("2024-01-01"),
		},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, nil, nil)
	resp, err := svc.SetHours(context.Background(), hours.SetHoursRequest{
		SegmentID:    "s1",
		AssignmentID: "a1",
		Hours:        dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, resp.UsedRate.Equal(dec("25.50")))
	assert.True(t, resp.Total.Equal(dec("255.00")), "got %s", resp.Total)
	assert.True(t, saved.Total.Equal(dec("255.00")))
}

func TestSetHours_UpdateRecomputesTotal(t *testing.T) {
	override := dec("25.50")

	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			return entry, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{
			WorkerID:     "w1",
			RoleID:       "r1",
			OverrideRate: &override,
			StartDate:    date("2024-01-01"),
		},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, nil, nil)

	first, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("10")})
	require.NoError(t, err)
	assert.True(t, first.Total.Equal(dec("255.00")))

	second, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("12")})
	require.NoError(t, err)
	assert.True(t, second.Total.Equal(dec("306.00")), "got %s", second.Total)
}

func TestSetHours_ExplicitUsedRateWinsOverResolution(t *testing.T) {
	override := dec("25.50")
	pinned := dec("28.00")

	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			return entry, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{WorkerID: "w1", RoleID: "r1", OverrideRate: &override, StartDate: date("2024-01-01")},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, nil, nil)
	resp, err := svc.SetHours(context.Background(), hours.SetHoursRequest{
		SegmentID:    "s1",
		AssignmentID: "a1",
		Hours:        dec("2"),
		UsedRate:     &pinned,
	})
	require.NoError(t, err)
	assert.True(t, resp.UsedRate.Equal(pinned))
	assert.True(t, resp.Total.Equal(dec("56.00")))
}

func TestSetHours_ResolvesGeneralRateAtPayrollStart(t *testing.T) {
	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			return entry, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{WorkerID: "w1", RoleID: "r1", StartDate: date("2024-01-01")},
	}
	workerRepo := &fakeWorkerRepository{
		rates: []worker.RoleRate{{
			ID:          "rr1",
			WorkerID:    "w1",
			RoleID:      "r1",
			GeneralRate: dec("30"),
			StartDate:   date("2023-06-01"),
		}},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, workerRepo, nil)
	resp, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("4")})
	require.NoError(t, err)
	assert.True(t, resp.UsedRate.Equal(dec("30")))
	assert.True(t, resp.Total.Equal(dec("120.00")))
}

func TestSetHours_FinalizedPayrollLocked(t *testing.T) {
	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			t.Fatal("locked payroll must not accept hour writes")
			return hours.Entry{}, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{assignment: assignment.Assignment{WorkerID: "w1", RoleID: "r1"}}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusFinalized}, assignmentRepo, nil, nil)
	_, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("1")})
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestSetHours_CapPassedThroughAndRejectionPropagates(t *testing.T) {
	override := dec("20")
	maxHours := dec("40")

	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			require.NotNil(t, maxHoursPerPatient)
			assert.True(t, maxHoursPerPatient.Equal(maxHours))
			return hours.Entry{}, hours.ErrHoursLimitExceeded
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{WorkerID: "w1", RoleID: "r1", OverrideRate: &override, StartDate: date("2024-01-01")},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, nil, &maxHours)
	_, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("45")})
	assert.ErrorIs(t, err, hours.ErrHoursLimitExceeded)
}

func TestSetHours_RejectsNegativeHours(t *testing.T) {
	svc := newService(&fakeHoursRepository{}, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, &fakeAssignmentRepository{}, nil, nil)
	_, err := svc.SetHours(context.Background(), hours.SetHoursRequest{SegmentID: "s1", AssignmentID: "a1", Hours: dec("-1")})
	assert.Error(t, err)
}

func TestBulkSetHours_ContinuesOnError(t *testing.T) {
	override := dec("20")
	calls := 0

	hoursRepo := &fakeHoursRepository{
		upsertFn: func(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
			calls++
			if entry.AssignmentID == "a-bad" {
				return hours.Entry{}, hours.ErrHoursLimitExceeded
			}
			return entry, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepository{
		assignment: assignment.Assignment{WorkerID: "w1", RoleID: "r1", OverrideRate: &override, StartDate: date("2024-01-01")},
	}

	svc := newService(hoursRepo, &fakePayrollRepository{payrollStatus: payroll.PayrollStatusDraft}, assignmentRepo, nil, nil)
	result, err := svc.BulkSetHours(context.Background(), hours.BulkSetHoursRequest{
		Lines: []hours.SetHoursRequest{
			{SegmentID: "s1", AssignmentID: "a1", Hours: dec("5")},
			{SegmentID: "s1", AssignmentID: "a-bad", Hours: dec("99")},
			{SegmentID: "s1", AssignmentID: "a2", Hours: dec("3")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 3, calls)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[1], "limit")
}

func TestBulkSetHours_EmptyLinesRejected(t *testing.T) {
	svc := newService(&fakeHoursRepository{}, &fakePayrollRepository{}, &fakeAssignmentRepository{}, nil, nil)
	_, err := svc.BulkSetHours(context.Background(), hours.BulkSetHoursRequest{})
	assert.Error(t, err)
}
