package worker

import (
	"context"
	"time"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, activeOnly bool) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string) error

	// Rate history
	CreateRoleRate(ctx context.Context, rate RoleRate) (RoleRate, error)
	GetRoleRates(ctx context.Context, workerID string) ([]RoleRate, error)
	// GetRatesForRole returns all rate-history rows for (worker, role)
	// whose range covers asOf, newest start_date first then id desc.
	GetRatesForRole(ctx context.Context, workerID, roleID string, asOf time.Time) ([]RoleRate, error)
	// ReplaceRoleRates closes out and replaces a worker's rate rows in
	// one transaction (all-or-nothing).
	ReplaceRoleRates(ctx context.Context, workerID string, rates []RoleRate) error
}
