package rate

import (
	"context"
	"testing"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func rateRow(id, start string, end *string, amount float64) worker.RoleRate {
	row := worker.RoleRate{
		ID:          id,
		WorkerID:    "w1",
		RoleID:      "r1",
		GeneralRate: decimal.NewFromFloat(amount),
		StartDate:   date(start),
	}
	if end != nil {
		row.EndDate = datePtr(*end)
	}
	return row
}

func strPtr(s string) *string { return &s }

func TestSelectRate_LatestCoveringRowWins(t *testing.T) {
	rates := []worker.RoleRate{
		rateRow("a", "2023-01-01", strPtr("2023-12-31"), 20),
		rateRow("b", "2024-01-01", nil, 25),
	}

	selected := SelectRate(rates, date("2024-03-15"))
	require.NotNil(t, selected)
	assert.Equal(t, "b", selected.ID)
	assert.True(t, selected.GeneralRate.Equal(decimal.NewFromInt(25)))
}

func TestSelectRate_OlderDateUsesHistoricalRow(t *testing.T) {
	rates := []worker.RoleRate{
		rateRow("a", "2023-01-01", strPtr("2023-12-31"), 20),
		rateRow("b", "2024-01-01", nil, 25),
	}

	selected := SelectRate(rates, date("2023-06-01"))
	require.NotNil(t, selected)
	assert.Equal(t, "a", selected.ID)
}

func TestSelectRate_NoCoveringRow(t *testing.T) {
	rates := []worker.RoleRate{
		rateRow("a", "2023-01-01", strPtr("2023-06-30"), 20),
	}

	assert.Nil(t, SelectRate(rates, date("2022-12-31")))
	assert.Nil(t, SelectRate(rates, date("2023-07-01")))
	assert.Nil(t, SelectRate(nil, date("2023-03-01")))
}

func TestSelectRate_BoundaryDatesInclusive(t *testing.T) {
	rates := []worker.RoleRate{
		rateRow("a", "2024-01-01", strPtr("2024-01-14"), 30),
	}

	start := SelectRate(rates, date("2024-01-01"))
	require.NotNil(t, start)
	end := SelectRate(rates, date("2024-01-14"))
	require.NotNil(t, end)
}

func TestSelectRate_EqualStartDatesTieBreakOnID(t *testing.T) {
	// No uniqueness constraint prevents two current rows; the higher
	// id must win so repeated resolutions agree.
	rates := []worker.RoleRate{
		rateRow("0191aaaa", "2024-01-01", nil, 20),
		rateRow("0191bbbb", "2024-01-01", nil, 22),
	}

	selected := SelectRate(rates, date("2024-02-01"))
	require.NotNil(t, selected)
	assert.Equal(t, "0191bbbb", selected.ID)
	assert.True(t, selected.GeneralRate.Equal(decimal.NewFromInt(22)))
}

type fakeWorkerRepository struct {
	worker.WorkerRepository
	getRatesForRoleFn func(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error)
}

func (f *fakeWorkerRepository) GetRatesForRole(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
	return f.getRatesForRoleFn(ctx, workerID, roleID, asOf)
}

func TestResolveEffectiveRate_OverrideWins(t *testing.T) {
	override := decimal.NewFromFloat(31.50)
	a := assignment.Assignment{
		ID:           "as1",
		WorkerID:     "w1",
		RoleID:       "r1",
		OverrideRate: &override,
		StartDate:    date("2024-01-01"),
	}

	repo := &fakeWorkerRepository{
		getRatesForRoleFn: func(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
			t.Fatal("general rate history must not be consulted when an override exists")
			return nil, nil
		},
	}

	resolver := NewResolver(repo)
	rate, err := resolver.ResolveEffectiveRate(context.Background(), a, date("2024-01-01"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(override))
}

func TestResolveEffectiveRate_FallsBackToGeneralRate(t *testing.T) {
	a := assignment.Assignment{ID: "as1", WorkerID: "w1", RoleID: "r1", StartDate: date("2024-01-01")}

	repo := &fakeWorkerRepository{
		getRatesForRoleFn: func(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
			assert.Equal(t, "w1", workerID)
			assert.Equal(t, "r1", roleID)
			assert.True(t, asOf.Equal(date("2024-01-01")))
			return []worker.RoleRate{rateRow("a", "2023-06-01", nil, 25.5)}, nil
		},
	}

	resolver := NewResolver(repo)
	rate, err := resolver.ResolveEffectiveRate(context.Background(), a, date("2024-01-01"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(25.5)))
}

func TestResolveEffectiveRate_NoHistoryDefaultsToZero(t *testing.T) {
	a := assignment.Assignment{ID: "as1", WorkerID: "w1", RoleID: "r1", StartDate: date("2024-01-01")}

	repo := &fakeWorkerRepository{
		getRatesForRoleFn: func(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
			return nil, nil
		},
	}

	resolver := NewResolver(repo)
	rate, err := resolver.ResolveEffectiveRate(context.Background(), a, date("2024-01-01"))
	require.NoError(t, err)
	assert.True(t, rate.IsZero())
}

func TestResolveGeneralRate_NilWhenUncovered(t *testing.T) {
	repo := &fakeWorkerRepository{
		getRatesForRoleFn: func(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
			return []worker.RoleRate{rateRow("a", "2025-01-01", nil, 40)}, nil
		},
	}

	resolver := NewResolver(repo)
	rate, err := resolver.ResolveGeneralRate(context.Background(), "w1", "r1", date("2024-01-01"))
	require.NoError(t, err)
	assert.Nil(t, rate)
}
