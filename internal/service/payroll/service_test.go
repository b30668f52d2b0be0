package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhc-billing/payroll-backend-go/internal/config"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

// ========== SEGMENT SPLITTING ==========

func TestSplitIntoSegments_BiweeklyOnWeekBoundary(t *testing.T) {
	// Monday 2024-01-01 through Sunday 2024-01-14, weeks start Monday.
	segments := SplitIntoSegments(date("2024-01-01"), date("2024-01-14"), time.Monday)

	require.Len(t, segments, 2)
	assert.True(t, segments[0].StartDate.Equal(date("2024-01-01")))
	assert.True(t, segments[0].EndDate.Equal(date("2024-01-07")))
	assert.True(t, segments[1].StartDate.Equal(date("2024-01-08")))
	assert.True(t, segments[1].EndDate.Equal(date("2024-01-14")))
}

func TestSplitIntoSegments_MidWeekStartYieldsPartialFirstWeek(t *testing.T) {
	// Wednesday start: the first segment runs only to the Sunday.
	segments := SplitIntoSegments(date("2024-01-03"), date("2024-01-16"), time.Monday)

	require.Len(t, segments, 3)
	assert.True(t, segments[0].EndDate.Equal(date("2024-01-07")))
	assert.True(t, segments[1].StartDate.Equal(date("2024-01-08")))
	assert.True(t, segments[1].EndDate.Equal(date("2024-01-14")))
	assert.True(t, segments[2].StartDate.Equal(date("2024-01-15")))
	assert.True(t, segments[2].EndDate.Equal(date("2024-01-16")))
}

func TestSplitIntoSegments_SingleDay(t *testing.T) {
	segments := SplitIntoSegments(date("2024-01-05"), date("2024-01-05"), time.Monday)

	require.Len(t, segments, 1)
	assert.True(t, segments[0].StartDate.Equal(segments[0].EndDate))
}

func TestSplitIntoSegments_ContiguousAndCovering(t *testing.T) {
	start, end := date("2024-03-06"), date("2024-03-27")
	segments := SplitIntoSegments(start, end, time.Sunday)

	require.NotEmpty(t, segments)
	assert.True(t, segments[0].StartDate.Equal(start))
	assert.True(t, segments[len(segments)-1].EndDate.Equal(end))
	for i := 1; i < len(segments); i++ {
		assert.True(t, segments[i].StartDate.Equal(segments[i-1].EndDate.AddDate(0, 0, 1)))
	}
}

// ========== OVERLAP ==========

func TestOverlaps_TouchingRangesCount(t *testing.T) {
	// [Jan 1, Jan 14] and [Jan 14, Jan 28] share the 14th.
	assert.True(t, payroll.Overlaps(date("2024-01-01"), date("2024-01-14"), date("2024-01-14"), date("2024-01-28")))
}

func TestOverlaps_DisjointRanges(t *testing.T) {
	assert.False(t, payroll.Overlaps(date("2024-01-01"), date("2024-01-14"), date("2024-01-15"), date("2024-01-28")))
}

func TestOverlaps_ContainedRange(t *testing.T) {
	assert.True(t, payroll.Overlaps(date("2024-01-01"), date("2024-01-31"), date("2024-01-10"), date("2024-01-12")))
}

// ========== SERVICE ==========

type fakePayrollRepository struct {
	payroll.PayrollRepository
	createWithSegmentsFn func(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error)
	getByIDFn            func(ctx context.Context, id string) (payroll.Payroll, error)
	listOverlappingFn    func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error)
	updateFn             func(ctx context.Context, req payroll.UpdatePayrollRequest) error
	updateStatusFn       func(ctx context.Context, id string, status payroll.PayrollStatus) error
	deleteFn             func(ctx context.Context, id string) error
	listSegmentsFn       func(ctx context.Context, payrollID string) ([]payroll.Segment, error)
	replaceSegmentsFn    func(ctx context.Context, payrollID string, segments []payroll.Segment) error
	hasHoursFn           func(ctx context.Context, payrollID string) (bool, error)
	seedPatientsFn       func(ctx context.Context, payrollID string, patientIDs []string) (int, error)
}

func (f *fakePayrollRepository) CreateWithSegments(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error) {
	return f.createWithSegmentsFn(ctx, p, segments, patientIDs)
}

func (f *fakePayrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollRepository) ListOverlapping(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
	return f.listOverlappingFn(ctx, start, end, excludeID)
}

func (f *fakePayrollRepository) Update(ctx context.Context, req payroll.UpdatePayrollRequest) error {
	return f.updateFn(ctx, req)
}

func (f *fakePayrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakePayrollRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakePayrollRepository) ListSegments(ctx context.Context, payrollID string) ([]payroll.Segment, error) {
	if f.listSegmentsFn != nil {
		return f.listSegmentsFn(ctx, payrollID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) ReplaceSegments(ctx context.Context, payrollID string, segments []payroll.Segment) error {
	return f.replaceSegmentsFn(ctx, payrollID, segments)
}

func (f *fakePayrollRepository) HasHours(ctx context.Context, payrollID string) (bool, error) {
	if f.hasHoursFn != nil {
		return f.hasHoursFn(ctx, payrollID)
	}
	return false, nil
}

func (f *fakePayrollRepository) SeedPatients(ctx context.Context, payrollID string, patientIDs []string) (int, error) {
	return f.seedPatientsFn(ctx, payrollID, patientIDs)
}

type fakePatientRepository struct {
	patient.PatientRepository
	listFn func(ctx context.Context, activeOnly bool) ([]patient.Patient, error)
}

func (f *fakePatientRepository) List(ctx context.Context, activeOnly bool) ([]patient.Patient, error) {
	return f.listFn(ctx, activeOnly)
}

func newService(payrollRepo *fakePayrollRepository, patientRepo *fakePatientRepository) payroll.PayrollService {
	if patientRepo == nil {
		patientRepo = &fakePatientRepository{
			listFn: func(ctx context.Context, activeOnly bool) ([]patient.Patient, error) {
				return nil, nil
			},
		}
	}
	return NewPayrollService(payrollRepo, patientRepo, config.PayrollConfig{WeekStartDay: int(time.Monday)})
}

func TestCreatePayroll_RejectsTouchingPeriod(t *testing.T) {
	repo := &fakePayrollRepository{
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			return []payroll.Payroll{{
				ID:        "p1",
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
			}}, nil
		},
		createWithSegmentsFn: func(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error) {
			t.Fatal("overlapping payroll must not be created")
			return payroll.Payroll{}, nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.CreatePayroll(context.Background(), payroll.CreatePayrollRequest{
		StartDate: "2024-01-14",
		EndDate:   "2024-01-28",
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollOverlap)
}

func TestCreatePayroll_SeedsActivePatientsAndSplitsSegments(t *testing.T) {
	var gotSegments []payroll.Segment
	var gotPatientIDs []string

	repo := &fakePayrollRepository{
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			return nil, nil
		},
		createWithSegmentsFn: func(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error) {
			gotSegments = segments
			gotPatientIDs = patientIDs
			p.ID = "p1"
			return p, nil
		},
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusDraft,
			}, nil
		},
	}
	patients := &fakePatientRepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]patient.Patient, error) {
			assert.True(t, activeOnly)
			return []patient.Patient{{ID: "pt1"}, {ID: "pt2"}}, nil
		},
	}

	svc := newService(repo, patients)
	resp, err := svc.CreatePayroll(context.Background(), payroll.CreatePayrollRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.ID)
	assert.Equal(t, string(payroll.PayrollStatusDraft), resp.Status)
	assert.Len(t, gotSegments, 2)
	assert.Equal(t, []string{"pt1", "pt2"}, gotPatientIDs)
}

func TestUpdatePayroll_FinalizedDropsDateEditsKeepsNotes(t *testing.T) {
	var gotUpdate payroll.UpdatePayrollRequest

	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusFinalized,
			}, nil
		},
		updateFn: func(ctx context.Context, req payroll.UpdatePayrollRequest) error {
			gotUpdate = req
			return nil
		},
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			t.Fatal("date edits on a finalized payroll must be dropped before overlap checks")
			return nil, nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.UpdatePayroll(context.Background(), payroll.UpdatePayrollRequest{
		ID:        "p1",
		StartDate: strPtr("2024-02-01"),
		EndDate:   strPtr("2024-02-14"),
		Notes:     strPtr("late adjustment recorded separately"),
	})
	require.NoError(t, err)
	assert.Nil(t, gotUpdate.StartDate)
	assert.Nil(t, gotUpdate.EndDate)
	require.NotNil(t, gotUpdate.Notes)
	assert.Equal(t, "late adjustment recorded separately", *gotUpdate.Notes)
}

func TestCreatePayroll_OverlapCheckExcludesNothing(t *testing.T) {
	// A create has no own id to exclude: the repository must receive
	// nil, never an empty-string placeholder (an empty string cannot
	// cast to uuid and would fail the query itself).
	var gotExclude *string
	checked := false

	repo := &fakePayrollRepository{
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			gotExclude = excludeID
			checked = true
			return nil, nil
		},
		createWithSegmentsFn: func(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error) {
			p.ID = "p1"
			return p, nil
		},
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{ID: id, StartDate: date("2024-01-01"), EndDate: date("2024-01-14"), Status: payroll.PayrollStatusDraft}, nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.CreatePayroll(context.Background(), payroll.CreatePayrollRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-14",
	})
	require.NoError(t, err)
	assert.True(t, checked)
	assert.Nil(t, gotExclude)
}

func TestUpdatePayroll_DateChangeResplitsSegments(t *testing.T) {
	var gotExclude *string
	var gotSegments []payroll.Segment
	updated := false

	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			p := payroll.Payroll{ID: id, Status: payroll.PayrollStatusDraft}
			if updated {
				p.StartDate, p.EndDate = date("2024-02-05"), date("2024-02-18")
			} else {
				p.StartDate, p.EndDate = date("2024-01-01"), date("2024-01-14")
			}
			return p, nil
		},
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			gotExclude = excludeID
			return nil, nil
		},
		updateFn: func(ctx context.Context, req payroll.UpdatePayrollRequest) error {
			updated = true
			return nil
		},
		replaceSegmentsFn: func(ctx context.Context, payrollID string, segments []payroll.Segment) error {
			assert.Equal(t, "p1", payrollID)
			gotSegments = segments
			return nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.UpdatePayroll(context.Background(), payroll.UpdatePayrollRequest{
		ID:        "p1",
		StartDate: strPtr("2024-02-05"),
		EndDate:   strPtr("2024-02-18"),
	})
	require.NoError(t, err)
	require.NotNil(t, gotExclude)
	assert.Equal(t, "p1", *gotExclude)

	// Monday 2024-02-05 through Sunday 2024-02-18, weeks start Monday.
	require.Len(t, gotSegments, 2)
	assert.True(t, gotSegments[0].StartDate.Equal(date("2024-02-05")))
	assert.True(t, gotSegments[0].EndDate.Equal(date("2024-02-11")))
	assert.True(t, gotSegments[1].StartDate.Equal(date("2024-02-12")))
	assert.True(t, gotSegments[1].EndDate.Equal(date("2024-02-18")))
}

func TestUpdatePayroll_DateChangeWithRecordedHoursRejected(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusDraft,
			}, nil
		},
		listOverlappingFn: func(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
			return nil, nil
		},
		hasHoursFn: func(ctx context.Context, payrollID string) (bool, error) {
			return true, nil
		},
		updateFn: func(ctx context.Context, req payroll.UpdatePayrollRequest) error {
			t.Fatal("date change with recorded hours must not be written")
			return nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.UpdatePayroll(context.Background(), payroll.UpdatePayrollRequest{
		ID:      "p1",
		EndDate: strPtr("2024-01-21"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollHasHours)
}

func TestUpdatePayroll_NotesOnlyKeepsSegments(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusDraft,
			}, nil
		},
		updateFn: func(ctx context.Context, req payroll.UpdatePayrollRequest) error {
			return nil
		},
		replaceSegmentsFn: func(ctx context.Context, payrollID string, segments []payroll.Segment) error {
			t.Fatal("notes edit must not touch segments")
			return nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.UpdatePayroll(context.Background(), payroll.UpdatePayrollRequest{
		ID:    "p1",
		Notes: strPtr("adjusted supervision notes"),
	})
	require.NoError(t, err)
}

func TestUpdatePayroll_RejectsInvertedRange(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusDraft,
			}, nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.UpdatePayroll(context.Background(), payroll.UpdatePayrollRequest{
		ID:      "p1",
		EndDate: strPtr("2023-12-31"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollInvalidRange)
}

func TestFinalizePayroll_Idempotent(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusFinalized,
			}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status payroll.PayrollStatus) error {
			t.Fatal("re-finalizing must not write")
			return nil
		},
	}

	svc := newService(repo, nil)
	resp, err := svc.FinalizePayroll(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusFinalized), resp.Status)
}

func TestReopenPayroll_SetsDraft(t *testing.T) {
	var gotStatus payroll.PayrollStatus

	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{
				ID:        id,
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-14"),
				Status:    payroll.PayrollStatusFinalized,
			}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status payroll.PayrollStatus) error {
			gotStatus = status
			return nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.ReopenPayroll(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusDraft, gotStatus)
}

func TestSeedPatients_AddsNewlyActivePatients(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{ID: id, Status: payroll.PayrollStatusDraft}, nil
		},
		seedPatientsFn: func(ctx context.Context, payrollID string, patientIDs []string) (int, error) {
			assert.Equal(t, "p1", payrollID)
			assert.Equal(t, []string{"pt1", "pt2", "pt3"}, patientIDs)
			// pt1 and pt2 were already in scope.
			return 1, nil
		},
	}
	patients := &fakePatientRepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]patient.Patient, error) {
			assert.True(t, activeOnly)
			return []patient.Patient{{ID: "pt1"}, {ID: "pt2"}, {ID: "pt3"}}, nil
		},
	}

	svc := newService(repo, patients)
	inserted, err := svc.SeedPatients(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSeedPatients_FinalizedIsLocked(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{ID: id, Status: payroll.PayrollStatusFinalized}, nil
		},
		seedPatientsFn: func(ctx context.Context, payrollID string, patientIDs []string) (int, error) {
			t.Fatal("finalized payroll scope must not change")
			return 0, nil
		},
	}

	svc := newService(repo, nil)
	_, err := svc.SeedPatients(context.Background(), "p1")
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestDeletePayroll_FinalizedIsLocked(t *testing.T) {
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{ID: id, Status: payroll.PayrollStatusFinalized}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatal("finalized payroll must not be deleted")
			return nil
		},
	}

	svc := newService(repo, nil)
	err := svc.DeletePayroll(context.Background(), "p1")
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)
}

func TestDeletePayroll_DraftDeletes(t *testing.T) {
	deleted := false
	repo := &fakePayrollRepository{
		getByIDFn: func(ctx context.Context, id string) (payroll.Payroll, error) {
			return payroll.Payroll{ID: id, Status: payroll.PayrollStatusDraft}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}

	svc := newService(repo, nil)
	require.NoError(t, svc.DeletePayroll(context.Background(), "p1"))
	assert.True(t, deleted)
}
