package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/worker"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, first_name, last_name, supervisor_id, is_active)
		VALUES (uuidv7(), $1, $2, $3, TRUE)
		RETURNING id, first_name, last_name, supervisor_id, is_active, created_at, updated_at
	`

	var result worker.Worker
	err := q.QueryRow(ctx, query, w.FirstName, w.LastName, w.SupervisorID).Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&result.SupervisorID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "workers_supervisor_id_fkey") {
			return worker.Worker{}, worker.ErrSupervisorNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return result, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.first_name, w.last_name, w.supervisor_id, w.is_active,
		       w.created_at, w.updated_at,
		       s.first_name || ' ' || s.last_name AS supervisor_name
		FROM workers w
		LEFT JOIN workers s ON s.id = w.supervisor_id
		WHERE w.id = $1
	`

	var result worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&result.SupervisorID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.SupervisorName,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return result, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.first_name, w.last_name, w.supervisor_id, w.is_active,
		       w.created_at, w.updated_at,
		       s.first_name || ' ' || s.last_name AS supervisor_name
		FROM workers w
		LEFT JOIN workers s ON s.id = w.supervisor_id
		WHERE ($1 = FALSE OR w.is_active = TRUE)
		ORDER BY w.last_name ASC, w.first_name ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID,
			&w.FirstName,
			&w.LastName,
			&w.SupervisorID,
			&w.IsActive,
			&w.CreatedAt,
			&w.UpdatedAt,
			&w.SupervisorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    supervisor_id = COALESCE($3, supervisor_id),
		    is_active = COALESCE($4, is_active),
		    updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, req.FirstName, req.LastName, req.SupervisorID, req.IsActive, req.ID)
	if err != nil {
		if strings.Contains(err.Error(), "workers_supervisor_id_fkey") {
			return worker.ErrSupervisorNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// CreateRoleRate implements worker.WorkerRepository.
func (r *workerRepositoryImpl) CreateRoleRate(ctx context.Context, rate worker.RoleRate) (worker.RoleRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_role_rates (id, worker_id, role_id, general_rate, start_date, end_date)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		RETURNING id, worker_id, role_id, general_rate, start_date, end_date, created_at, updated_at
	`

	var result worker.RoleRate
	err := q.QueryRow(ctx, query, rate.WorkerID, rate.RoleID, rate.GeneralRate, rate.StartDate, rate.EndDate).Scan(
		&result.ID,
		&result.WorkerID,
		&result.RoleID,
		&result.GeneralRate,
		&result.StartDate,
		&result.EndDate,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return worker.RoleRate{}, fmt.Errorf("failed to create role rate: %w", err)
	}

	return result, nil
}

// GetRoleRates implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetRoleRates(ctx context.Context, workerID string) ([]worker.RoleRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rr.id, rr.worker_id, rr.role_id, rr.general_rate, rr.start_date, rr.end_date,
		       rr.created_at, rr.updated_at, ro.code, ro.name
		FROM worker_role_rates rr
		JOIN roles ro ON ro.id = rr.role_id
		WHERE rr.worker_id = $1
		ORDER BY ro.code ASC, rr.start_date DESC, rr.id DESC
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role rates: %w", err)
	}
	defer rows.Close()

	return scanRoleRates(rows)
}

// GetRatesForRole implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetRatesForRole(ctx context.Context, workerID, roleID string, asOf time.Time) ([]worker.RoleRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rr.id, rr.worker_id, rr.role_id, rr.general_rate, rr.start_date, rr.end_date,
		       rr.created_at, rr.updated_at, ro.code, ro.name
		FROM worker_role_rates rr
		JOIN roles ro ON ro.id = rr.role_id
		WHERE rr.worker_id = $1
		  AND rr.role_id = $2
		  AND rr.start_date <= $3
		  AND (rr.end_date IS NULL OR rr.end_date >= $3)
		ORDER BY rr.start_date DESC, rr.id DESC
	`

	rows, err := q.Query(ctx, query, workerID, roleID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get rates for role: %w", err)
	}
	defer rows.Close()

	return scanRoleRates(rows)
}

// ReplaceRoleRates implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ReplaceRoleRates(ctx context.Context, workerID string, rates []worker.RoleRate) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM worker_role_rates WHERE worker_id = $1`, workerID); err != nil {
			return fmt.Errorf("failed to clear role rates: %w", err)
		}

		insert := `
			INSERT INTO worker_role_rates (id, worker_id, role_id, general_rate, start_date, end_date)
			VALUES (uuidv7(), $1, $2, $3, $4, $5)
		`
		for _, rate := range rates {
			if _, err := tx.Exec(ctx, insert, workerID, rate.RoleID, rate.GeneralRate, rate.StartDate, rate.EndDate); err != nil {
				return fmt.Errorf("failed to insert role rate: %w", err)
			}
		}

		return nil
	})
}

func scanRoleRates(rows pgx.Rows) ([]worker.RoleRate, error) {
	var rates []worker.RoleRate
	for rows.Next() {
		var rate worker.RoleRate
		err := rows.Scan(
			&rate.ID,
			&rate.WorkerID,
			&rate.RoleID,
			&rate.GeneralRate,
			&rate.StartDate,
			&rate.EndDate,
			&rate.CreatedAt,
			&rate.UpdatedAt,
			&rate.RoleCode,
			&rate.RoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role rate: %w", err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rates, nil
}
