package rate

import (
	"context"
	"sort"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// Resolver picks the billing rate that applies to an assignment on a
// reference date. An assignment-level override always wins; otherwise
// the worker's general-rate history for the role decides.
type Resolver struct {
	workerRepo worker.WorkerRepository
}

func NewResolver(workerRepo worker.WorkerRepository) *Resolver {
	return &Resolver{workerRepo: workerRepo}
}

// ResolveGeneralRate returns the general rate for (worker, role) on
// asOf, or nil when no history row covers the date.
func (r *Resolver) ResolveGeneralRate(ctx context.Context, workerID, roleID string, asOf time.Time) (*decimal.Decimal, error) {
	rates, err := r.workerRepo.GetRatesForRole(ctx, workerID, roleID, asOf)
	if err != nil {
		return nil, err
	}

	selected := SelectRate(rates, asOf)
	if selected == nil {
		return nil, nil
	}
	rate := selected.GeneralRate
	return &rate, nil
}

// ResolveEffectiveRate returns the rate an hours line should freeze:
// the assignment override when present, otherwise the general rate as
// of the payroll's start date, defaulting to zero when the worker has
// no rate history for the role.
func (r *Resolver) ResolveEffectiveRate(ctx context.Context, a assignment.Assignment, payrollStart time.Time) (decimal.Decimal, error) {
	if a.OverrideRate != nil {
		return *a.OverrideRate, nil
	}

	general, err := r.ResolveGeneralRate(ctx, a.WorkerID, a.RoleID, payrollStart)
	if err != nil {
		return decimal.Zero, err
	}
	if general == nil {
		return decimal.Zero, nil
	}
	return *general, nil
}

// SelectRate picks, among rows whose range covers asOf, the one with
// the latest start date. Rate history has no uniqueness constraint,
// so two rows can share a start date; the higher id wins to keep the
// choice deterministic.
func SelectRate(rates []worker.RoleRate, asOf time.Time) *worker.RoleRate {
	var candidates []worker.RoleRate
	for _, rate := range rates {
		if rate.StartDate.After(asOf) {
			continue
		}
		if rate.EndDate != nil && rate.EndDate.Before(asOf) {
			continue
		}
		candidates = append(candidates, rate)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].StartDate.Equal(candidates[j].StartDate) {
			return candidates[i].StartDate.After(candidates[j].StartDate)
		}
		return candidates[i].ID > candidates[j].ID
	})

	return &candidates[0]
}
