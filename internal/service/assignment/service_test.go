package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

type fakeAssignmentRepository struct {
	assignment.AssignmentRepository
	getByIDFn         func(ctx context.Context, id string) (assignment.Assignment, error)
	hasHoursFn        func(ctx context.Context, id string) (bool, error)
	updateFn          func(ctx context.Context, req assignment.UpdateAssignmentRequest) error
	deleteFn          func(ctx context.Context, id string) error
	closeAndReplaceFn func(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error)
}

func (f *fakeAssignmentRepository) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeAssignmentRepository) HasHours(ctx context.Context, id string) (bool, error) {
	return f.hasHoursFn(ctx, id)
}

func (f *fakeAssignmentRepository) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	return f.updateFn(ctx, req)
}

func (f *fakeAssignmentRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeAssignmentRepository) CloseAndReplace(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error) {
	return f.closeAndReplaceFn(ctx, oldID, replacement)
}

func currentAssignment(id string) assignment.Assignment {
	override := decimal.NewFromInt(30)
	return assignment.Assignment{
		ID:           id,
		WorkerID:     "w1",
		PatientID:    "pt1",
		RoleID:       "r1",
		OverrideRate: &override,
		StartDate:    date("2024-01-01"),
	}
}

func TestUpdateAssignment_NoHoursEditsInPlace(t *testing.T) {
	updated := false

	repo := &fakeAssignmentRepository{
		getByIDFn: func(ctx context.Context, id string) (assignment.Assignment, error) {
			return currentAssignment(id), nil
		},
		hasHoursFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
		updateFn: func(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
			updated = true
			return nil
		},
		closeAndReplaceFn: func(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error) {
			t.Fatal("no versioning needed when nothing references the row")
			return assignment.Assignment{}, nil
		},
	}

	svc := NewAssignmentService(repo, nil, nil, nil)
	newRate := decimal.NewFromInt(35)
	_, err := svc.UpdateAssignment(context.Background(), assignment.UpdateAssignmentRequest{
		ID:           "as1",
		OverrideRate: &newRate,
	})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateAssignment_WithHoursClosesAndReplaces(t *testing.T) {
	var gotOldID string
	var gotReplacement assignment.Assignment

	repo := &fakeAssignmentRepository{
		getByIDFn: func(ctx context.Context, id string) (assignment.Assignment, error) {
			return currentAssignment(id), nil
		},
		hasHoursFn: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
		updateFn: func(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
			t.Fatal("rows with recorded hours must not be edited in place")
			return nil
		},
		closeAndReplaceFn: func(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error) {
			gotOldID = oldID
			gotReplacement = replacement
			replacement.ID = "as2"
			return replacement, nil
		},
	}

	svc := NewAssignmentService(repo, nil, nil, nil)
	newRate := decimal.NewFromInt(35)
	_, err := svc.UpdateAssignment(context.Background(), assignment.UpdateAssignmentRequest{
		ID:           "as1",
		OverrideRate: &newRate,
		StartDate:    strPtr("2024-02-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "as1", gotOldID)
	require.NotNil(t, gotReplacement.OverrideRate)
	assert.True(t, gotReplacement.OverrideRate.Equal(newRate))
	assert.True(t, gotReplacement.StartDate.Equal(date("2024-02-01")))
	assert.Equal(t, "w1", gotReplacement.WorkerID)
	assert.Equal(t, "pt1", gotReplacement.PatientID)
}

func TestUpdateAssignment_ClearOverrideOnReplacement(t *testing.T) {
	repo := &fakeAssignmentRepository{
		getByIDFn: func(ctx context.Context, id string) (assignment.Assignment, error) {
			return currentAssignment(id), nil
		},
		hasHoursFn: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
		closeAndReplaceFn: func(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error) {
			assert.Nil(t, replacement.OverrideRate)
			replacement.ID = "as2"
			return replacement, nil
		},
	}

	svc := NewAssignmentService(repo, nil, nil, nil)
	_, err := svc.UpdateAssignment(context.Background(), assignment.UpdateAssignmentRequest{
		ID:            "as1",
		ClearOverride: true,
	})
	require.NoError(t, err)
}

func TestDeleteAssignment_NoHoursHardDeletes(t *testing.T) {
	deleted := false

	repo := &fakeAssignmentRepository{
		hasHoursFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}

	svc := NewAssignmentService(repo, nil, nil, nil)
	require.NoError(t, svc.DeleteAssignment(context.Background(), "as1"))
	assert.True(t, deleted)
}

func TestDeleteAssignment_WithHoursSoftEnds(t *testing.T) {
	var gotUpdate assignment.UpdateAssignmentRequest

	repo := &fakeAssignmentRepository{
		hasHoursFn: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
		updateFn: func(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
			gotUpdate = req
			return nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatal("rows with recorded hours must not be hard-deleted")
			return nil
		},
	}

	svc := NewAssignmentService(repo, nil, nil, nil)
	require.NoError(t, svc.DeleteAssignment(context.Background(), "as1"))
	assert.Equal(t, "as1", gotUpdate.ID)
	require.NotNil(t, gotUpdate.EndDate)
}

func TestActiveOn_RangeBoundariesInclusive(t *testing.T) {
	a := currentAssignment("as1")
	end := date("2024-03-31")
	a.EndDate = &end

	assert.True(t, a.ActiveOn(date("2024-01-01")))
	assert.True(t, a.ActiveOn(date("2024-03-31")))
	assert.False(t, a.ActiveOn(date("2023-12-31")))
	assert.False(t, a.ActiveOn(date("2024-04-01")))
}
