package worker

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// WorkerService defines business logic for staff and their billing
// rate history
type WorkerService interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	ListWorkers(ctx context.Context, activeOnly bool) ([]WorkerResponse, error)
	// UpdateWorker patches worker fields; when rates are supplied the
	// whole rate set is replaced in one transaction.
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	DeleteWorker(ctx context.Context, id string) error

	// GetGeneralRate resolves the general rate for (worker, role) on a
	// reference date; nil when no history row covers it.
	GetGeneralRate(ctx context.Context, workerID, roleID string, asOf time.Time) (*decimal.Decimal, error)
}
