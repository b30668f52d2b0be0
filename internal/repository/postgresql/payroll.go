package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/payroll"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// CreateWithSegments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateWithSegments(ctx context.Context, p payroll.Payroll, segments []payroll.Segment, patientIDs []string) (payroll.Payroll, error) {
	var created payroll.Payroll

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insertPayroll := `
			INSERT INTO payrolls (id, start_date, end_date, status, notes)
			VALUES (uuidv7(), $1, $2, $3, $4)
			RETURNING id, start_date, end_date, status, notes, created_at, updated_at
		`
		err := tx.QueryRow(ctx, insertPayroll, p.StartDate, p.EndDate, p.Status, p.Notes).Scan(
			&created.ID,
			&created.StartDate,
			&created.EndDate,
			&created.Status,
			&created.Notes,
			&created.CreatedAt,
			&created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create payroll: %w", err)
		}

		insertSegment := `
			INSERT INTO payroll_segments (id, payroll_id, start_date, end_date)
			VALUES (uuidv7(), $1, $2, $3)
		`
		for _, seg := range segments {
			if _, err := tx.Exec(ctx, insertSegment, created.ID, seg.StartDate, seg.EndDate); err != nil {
				return fmt.Errorf("failed to create payroll segment: %w", err)
			}
		}

		insertPatient := `
			INSERT INTO patient_payrolls (id, payroll_id, patient_id, is_processed)
			VALUES (uuidv7(), $1, $2, FALSE)
			ON CONFLICT (payroll_id, patient_id) DO NOTHING
		`
		for _, patientID := range patientIDs {
			if _, err := tx.Exec(ctx, insertPatient, created.ID, patientID); err != nil {
				return fmt.Errorf("failed to seed payroll patient: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.Payroll{}, err
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, status, notes, created_at, updated_at
		FROM payrolls
		WHERE id = $1
	`

	var result payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.StartDate,
		&result.EndDate,
		&result.Status,
		&result.Notes,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return result, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, status, notes, created_at, updated_at
		FROM payrolls
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	return scanPayrolls(rows)
}

// ListOverlapping implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListOverlapping(ctx context.Context, start, end time.Time, excludeID *string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date, status, notes, created_at, updated_at
		FROM payrolls
		WHERE start_date <= $2
		  AND end_date >= $1
		  AND ($3::uuid IS NULL OR id <> $3::uuid)
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping payrolls: %w", err)
	}
	defer rows.Close()

	return scanPayrolls(rows)
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET start_date = COALESCE($1::date, start_date),
		    end_date = COALESCE($2::date, end_date),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.StartDate, req.EndDate, req.Notes, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update payroll: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Segments, patient scope rows and their hour lines cascade.
	query := `DELETE FROM payrolls WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// ListSegments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListSegments(ctx context.Context, payrollID string) ([]payroll.Segment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, start_date, end_date, created_at
		FROM payroll_segments
		WHERE payroll_id = $1
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll segments: %w", err)
	}
	defer rows.Close()

	var segments []payroll.Segment
	for rows.Next() {
		var seg payroll.Segment
		err := rows.Scan(
			&seg.ID,
			&seg.PayrollID,
			&seg.StartDate,
			&seg.EndDate,
			&seg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll segment: %w", err)
		}
		segments = append(segments, seg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return segments, nil
}

// GetSegmentByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSegmentByID(ctx context.Context, id string) (payroll.Segment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, start_date, end_date, created_at
		FROM payroll_segments
		WHERE id = $1
	`

	var result payroll.Segment
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.PayrollID,
		&result.StartDate,
		&result.EndDate,
		&result.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Segment{}, payroll.ErrSegmentNotFound
	}

	if err != nil {
		return payroll.Segment{}, fmt.Errorf("failed to get payroll segment: %w", err)
	}

	return result, nil
}

// ReplaceSegments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ReplaceSegments(ctx context.Context, payrollID string, segments []payroll.Segment) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM payroll_segments WHERE payroll_id = $1`, payrollID); err != nil {
			return fmt.Errorf("failed to delete payroll segments: %w", err)
		}

		insertSegment := `
			INSERT INTO payroll_segments (id, payroll_id, start_date, end_date)
			VALUES (uuidv7(), $1, $2, $3)
		`
		for _, seg := range segments {
			if _, err := tx.Exec(ctx, insertSegment, payrollID, seg.StartDate, seg.EndDate); err != nil {
				return fmt.Errorf("failed to create payroll segment: %w", err)
			}
		}

		return nil
	})
}

// HasHours implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) HasHours(ctx context.Context, payrollID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM hours_entries he
			JOIN payroll_segments ps ON ps.id = he.segment_id
			WHERE ps.payroll_id = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, payrollID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll hours: %w", err)
	}

	return exists, nil
}

// SeedPatients implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SeedPatients(ctx context.Context, payrollID string, patientIDs []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO patient_payrolls (id, payroll_id, patient_id, is_processed)
		VALUES (uuidv7(), $1, $2, FALSE)
		ON CONFLICT (payroll_id, patient_id) DO NOTHING
	`

	inserted := 0
	for _, patientID := range patientIDs {
		commandTag, err := q.Exec(ctx, query, payrollID, patientID)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed payroll patient: %w", err)
		}
		inserted += int(commandTag.RowsAffected())
	}

	return inserted, nil
}

// ListPatientPayrolls implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPatientPayrolls(ctx context.Context, payrollID string) ([]payroll.PatientPayroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pp.id, pp.payroll_id, pp.patient_id, pp.is_processed, pp.created_at, pp.updated_at,
		       p.first_name || ' ' || p.last_name AS patient_name,
		       p.record_number
		FROM patient_payrolls pp
		JOIN patients p ON p.id = pp.patient_id
		WHERE pp.payroll_id = $1
		ORDER BY p.last_name ASC, p.first_name ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient payrolls: %w", err)
	}
	defer rows.Close()

	var result []payroll.PatientPayroll
	for rows.Next() {
		var pp payroll.PatientPayroll
		err := rows.Scan(
			&pp.ID,
			&pp.PayrollID,
			&pp.PatientID,
			&pp.IsProcessed,
			&pp.CreatedAt,
			&pp.UpdatedAt,
			&pp.PatientName,
			&pp.RecordNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient payroll: %w", err)
		}
		result = append(result, pp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// SetPatientProcessed implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SetPatientProcessed(ctx context.Context, payrollID, patientID string, processed bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE patient_payrolls
		SET is_processed = $1, updated_at = NOW()
		WHERE payroll_id = $2 AND patient_id = $3
	`

	commandTag, err := q.Exec(ctx, query, processed, payrollID, patientID)
	if err != nil {
		return fmt.Errorf("failed to set patient processed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPatientPayrollNotFound
	}

	return nil
}

// CountsByStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountsByStatus(ctx context.Context, payrollID string) (payroll.PatientStatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_processed),
		       COUNT(*) FILTER (WHERE NOT is_processed)
		FROM patient_payrolls
		WHERE payroll_id = $1
	`

	var counts payroll.PatientStatusCounts
	err := q.QueryRow(ctx, query, payrollID).Scan(&counts.Total, &counts.Processed, &counts.Pending)
	if err != nil {
		return payroll.PatientStatusCounts{}, fmt.Errorf("failed to count patient payrolls: %w", err)
	}

	return counts, nil
}

func scanPayrolls(rows pgx.Rows) ([]payroll.Payroll, error) {
	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID,
			&p.StartDate,
			&p.EndDate,
			&p.Status,
			&p.Notes,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payrolls, nil
}
