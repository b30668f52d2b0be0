package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentSelect = `
	SELECT a.id, a.worker_id, a.patient_id, a.role_id, a.override_rate,
	       a.start_date, a.end_date, a.created_at, a.updated_at,
	       w.first_name || ' ' || w.last_name AS worker_name,
	       p.first_name || ' ' || p.last_name AS patient_name,
	       ro.code, ro.name
	FROM assignments a
	JOIN workers w ON w.id = a.worker_id
	JOIN patients p ON p.id = a.patient_id
	JOIN roles ro ON ro.id = a.role_id
`

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (id, worker_id, patient_id, role_id, override_rate, start_date, end_date)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, patient_id, role_id, override_rate, start_date, end_date, created_at, updated_at
	`

	var result assignment.Assignment
	err := q.QueryRow(ctx, query, a.WorkerID, a.PatientID, a.RoleID, a.OverrideRate, a.StartDate, a.EndDate).Scan(
		&result.ID,
		&result.WorkerID,
		&result.PatientID,
		&result.RoleID,
		&result.OverrideRate,
		&result.StartDate,
		&result.EndDate,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return result, nil
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + ` WHERE a.id = $1`

	var result assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.WorkerID,
		&result.PatientID,
		&result.RoleID,
		&result.OverrideRate,
		&result.StartDate,
		&result.EndDate,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.WorkerName,
		&result.PatientName,
		&result.RoleCode,
		&result.RoleName,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}

	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return result, nil
}

// ListByPatient implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByPatient(ctx context.Context, patientID string, activeOnly bool) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE a.patient_id = $1
		  AND ($2 = FALSE OR (a.start_date <= CURRENT_DATE AND (a.end_date IS NULL OR a.end_date >= CURRENT_DATE)))
		ORDER BY a.start_date DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query, patientID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments by patient: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByWorker implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByWorker(ctx context.Context, workerID string, activeOnly bool) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE a.worker_id = $1
		  AND ($2 = FALSE OR (a.start_date <= CURRENT_DATE AND (a.end_date IS NULL OR a.end_date >= CURRENT_DATE)))
		ORDER BY a.start_date DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query, workerID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments by worker: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET override_rate = CASE WHEN $1 THEN NULL ELSE COALESCE($2, override_rate) END,
		    start_date = COALESCE($3::date, start_date),
		    end_date = COALESCE($4::date, end_date),
		    updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, req.ClearOverride, req.OverrideRate, req.StartDate, req.EndDate, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM assignments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// HasHours implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) HasHours(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM hours_entries WHERE assignment_id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check assignment hours: %w", err)
	}

	return exists, nil
}

// CloseAndReplace implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) CloseAndReplace(ctx context.Context, oldID string, replacement assignment.Assignment) (assignment.Assignment, error) {
	var created assignment.Assignment

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		closeQuery := `
			UPDATE assignments
			SET end_date = $1 - INTERVAL '1 day', updated_at = NOW()
			WHERE id = $2
		`
		commandTag, err := tx.Exec(ctx, closeQuery, replacement.StartDate, oldID)
		if err != nil {
			return fmt.Errorf("failed to close assignment: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return assignment.ErrAssignmentNotFound
		}

		insertQuery := `
			INSERT INTO assignments (id, worker_id, patient_id, role_id, override_rate, start_date, end_date)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
			RETURNING id, worker_id, patient_id, role_id, override_rate, start_date, end_date, created_at, updated_at
		`
		err = tx.QueryRow(ctx, insertQuery,
			replacement.WorkerID,
			replacement.PatientID,
			replacement.RoleID,
			replacement.OverrideRate,
			replacement.StartDate,
			replacement.EndDate,
		).Scan(
			&created.ID,
			&created.WorkerID,
			&created.PatientID,
			&created.RoleID,
			&created.OverrideRate,
			&created.StartDate,
			&created.EndDate,
			&created.CreatedAt,
			&created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert replacement assignment: %w", err)
		}

		return nil
	})
	if err != nil {
		return assignment.Assignment{}, err
	}

	return created, nil
}

func scanAssignments(rows pgx.Rows) ([]assignment.Assignment, error) {
	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		err := rows.Scan(
			&a.ID,
			&a.WorkerID,
			&a.PatientID,
			&a.RoleID,
			&a.OverrideRate,
			&a.StartDate,
			&a.EndDate,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.WorkerName,
			&a.PatientName,
			&a.RoleCode,
			&a.RoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}
