package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/assignment"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type hoursRepositoryImpl struct {
	db *database.DB
}

func NewHoursRepository(db *database.DB) hours.HoursRepository {
	return &hoursRepositoryImpl{db: db}
}

// Upsert implements hours.HoursRepository.
//
// The cap check and the write happen inside one transaction. The
// patient's assignment rows are locked with FOR UPDATE before the
// existing hours are summed; hours rows themselves are no good as a
// lock anchor since a first insert has nothing to lock. Concurrent
// writes for the same patient serialize on the assignment rows, so
// whichever commits second sees the first one's hours and is
// rejected if the sum would pass the cap.
func (r *hoursRepositoryImpl) Upsert(ctx context.Context, entry hours.Entry, maxHoursPerPatient *decimal.Decimal) (hours.Entry, error) {
	var saved hours.Entry

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if maxHoursPerPatient != nil {
			var patientID string
			err := tx.QueryRow(ctx, `SELECT patient_id FROM assignments WHERE id = $1`, entry.AssignmentID).Scan(&patientID)
			if errors.Is(err, pgx.ErrNoRows) {
				return assignment.ErrAssignmentNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to resolve assignment patient: %w", err)
			}

			// Deterministic lock order across transactions.
			if _, err := tx.Exec(ctx, `SELECT id FROM assignments WHERE patient_id = $1 ORDER BY id FOR UPDATE`, patientID); err != nil {
				return fmt.Errorf("failed to lock patient assignments: %w", err)
			}

			sumQuery := `
				SELECT he.hours, he.assignment_id
				FROM hours_entries he
				JOIN assignments a ON a.id = he.assignment_id
				WHERE he.segment_id = $1
				  AND a.patient_id = $2
			`
			rows, err := tx.Query(ctx, sumQuery, entry.SegmentID, patientID)
			if err != nil {
				return fmt.Errorf("failed to sum patient hours: %w", err)
			}

			existing := decimal.Zero
			prior := decimal.Zero
			for rows.Next() {
				var h decimal.Decimal
				var assignmentID string
				if err := rows.Scan(&h, &assignmentID); err != nil {
					rows.Close()
					return fmt.Errorf("failed to scan patient hours: %w", err)
				}
				existing = existing.Add(h)
				if assignmentID == entry.AssignmentID {
					prior = prior.Add(h)
				}
			}
			rows.Close()
			if err := rows.Err(); err != nil {
				return fmt.Errorf("rows iteration error: %w", err)
			}

			if hours.ExceedsCap(existing, prior, entry.Hours, *maxHoursPerPatient) {
				return hours.ErrHoursLimitExceeded
			}
		}

		upsertQuery := `
			INSERT INTO hours_entries (id, segment_id, assignment_id, hours, used_rate, total)
			VALUES (uuidv7(), $1, $2, $3, $4, $5)
			ON CONFLICT (segment_id, assignment_id) DO UPDATE
			SET hours = EXCLUDED.hours,
			    used_rate = EXCLUDED.used_rate,
			    total = EXCLUDED.total,
			    updated_at = NOW()
			RETURNING id, segment_id, assignment_id, hours, used_rate, total, created_at, updated_at
		`
		err := tx.QueryRow(ctx, upsertQuery,
			entry.SegmentID,
			entry.AssignmentID,
			entry.Hours,
			entry.UsedRate,
			entry.Total,
		).Scan(
			&saved.ID,
			&saved.SegmentID,
			&saved.AssignmentID,
			&saved.Hours,
			&saved.UsedRate,
			&saved.Total,
			&saved.CreatedAt,
			&saved.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert hours entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return hours.Entry{}, err
	}

	return saved, nil
}

// GetBySegmentAssignment implements hours.HoursRepository.
func (r *hoursRepositoryImpl) GetBySegmentAssignment(ctx context.Context, segmentID, assignmentID string) (hours.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, segment_id, assignment_id, hours, used_rate, total, created_at, updated_at
		FROM hours_entries
		WHERE segment_id = $1 AND assignment_id = $2
	`

	var result hours.Entry
	err := q.QueryRow(ctx, query, segmentID, assignmentID).Scan(
		&result.ID,
		&result.SegmentID,
		&result.AssignmentID,
		&result.Hours,
		&result.UsedRate,
		&result.Total,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return hours.Entry{}, hours.ErrEntryNotFound
	}

	if err != nil {
		return hours.Entry{}, fmt.Errorf("failed to get hours entry: %w", err)
	}

	return result, nil
}

// Delete implements hours.HoursRepository.
func (r *hoursRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM hours_entries WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete hours entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return hours.ErrEntryNotFound
	}

	return nil
}

// ListDetailedForPayroll implements hours.HoursRepository.
func (r *hoursRepositoryImpl) ListDetailedForPayroll(ctx context.Context, payrollID string) ([]hours.LineDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT he.id, he.segment_id,
		       to_char(s.start_date, 'YYYY-MM-DD'), to_char(s.end_date, 'YYYY-MM-DD'),
		       he.assignment_id,
		       a.worker_id, w.first_name || ' ' || w.last_name,
		       a.patient_id, p.first_name || ' ' || p.last_name,
		       ro.code,
		       he.hours, he.used_rate, he.total
		FROM hours_entries he
		JOIN payroll_segments s ON s.id = he.segment_id
		JOIN assignments a ON a.id = he.assignment_id
		JOIN workers w ON w.id = a.worker_id
		JOIN patients p ON p.id = a.patient_id
		JOIN roles ro ON ro.id = a.role_id
		WHERE s.payroll_id = $1
		ORDER BY w.last_name ASC, w.first_name ASC, s.start_date ASC, p.last_name ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hours lines: %w", err)
	}
	defer rows.Close()

	var lines []hours.LineDetail
	for rows.Next() {
		var line hours.LineDetail
		err := rows.Scan(
			&line.EntryID,
			&line.SegmentID,
			&line.SegmentStart,
			&line.SegmentEnd,
			&line.AssignmentID,
			&line.WorkerID,
			&line.WorkerName,
			&line.PatientID,
			&line.PatientName,
			&line.RoleCode,
			&line.Hours,
			&line.UsedRate,
			&line.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hours line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lines, nil
}

// TotalsByWorkerForPayroll implements hours.HoursRepository.
func (r *hoursRepositoryImpl) TotalsByWorkerForPayroll(ctx context.Context, payrollID string) ([]hours.WorkerTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.worker_id, w.first_name || ' ' || w.last_name,
		       COALESCE(SUM(he.hours), 0), COALESCE(SUM(he.total), 0)
		FROM hours_entries he
		JOIN payroll_segments s ON s.id = he.segment_id
		JOIN assignments a ON a.id = he.assignment_id
		JOIN workers w ON w.id = a.worker_id
		WHERE s.payroll_id = $1
		GROUP BY a.worker_id, w.first_name, w.last_name
		ORDER BY w.last_name ASC, w.first_name ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to total hours by worker: %w", err)
	}
	defer rows.Close()

	var totals []hours.WorkerTotal
	for rows.Next() {
		var t hours.WorkerTotal
		if err := rows.Scan(&t.WorkerID, &t.WorkerName, &t.TotalHours, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan worker total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

// TotalsByPatientForPayroll implements hours.HoursRepository.
func (r *hoursRepositoryImpl) TotalsByPatientForPayroll(ctx context.Context, payrollID string) ([]hours.PatientTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.patient_id, p.first_name || ' ' || p.last_name,
		       COALESCE(SUM(he.hours), 0), COALESCE(SUM(he.total), 0)
		FROM hours_entries he
		JOIN payroll_segments s ON s.id = he.segment_id
		JOIN assignments a ON a.id = he.assignment_id
		JOIN patients p ON p.id = a.patient_id
		WHERE s.payroll_id = $1
		GROUP BY a.patient_id, p.first_name, p.last_name
		ORDER BY p.last_name ASC, p.first_name ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to total hours by patient: %w", err)
	}
	defer rows.Close()

	var totals []hours.PatientTotal
	for rows.Next() {
		var t hours.PatientTotal
		if err := rows.Scan(&t.PatientID, &t.PatientName, &t.TotalHours, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan patient total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

// TotalsByRoleForPayroll implements hours.HoursRepository.
func (r *hoursRepositoryImpl) TotalsByRoleForPayroll(ctx context.Context, payrollID string) ([]hours.RoleTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.role_id, ro.code,
		       COALESCE(SUM(he.hours), 0), COALESCE(SUM(he.total), 0)
		FROM hours_entries he
		JOIN payroll_segments s ON s.id = he.segment_id
		JOIN assignments a ON a.id = he.assignment_id
		JOIN roles ro ON ro.id = a.role_id
		WHERE s.payroll_id = $1
		GROUP BY a.role_id, ro.code
		ORDER BY ro.code ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to total hours by role: %w", err)
	}
	defer rows.Close()

	var totals []hours.RoleTotal
	for rows.Next() {
		var t hours.RoleTotal
		if err := rows.Scan(&t.RoleID, &t.RoleCode, &t.TotalHours, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan role total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}
