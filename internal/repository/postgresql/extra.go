package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type extraPaymentRepositoryImpl struct {
	db *database.DB
}

func NewExtraPaymentRepository(db *database.DB) extra.PaymentRepository {
	return &extraPaymentRepositoryImpl{db: db}
}

// Create implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) Create(ctx context.Context, payment extra.Payment) (extra.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO extra_payments (id, payroll_id, worker_id, special_rate_id, patient_id, supervised_worker_id, amount, notes)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, payroll_id, worker_id, special_rate_id, patient_id, supervised_worker_id, amount, notes, created_at, updated_at
	`

	var result extra.Payment
	err := q.QueryRow(ctx, query,
		payment.PayrollID,
		payment.WorkerID,
		payment.SpecialRateID,
		payment.PatientID,
		payment.SupervisedWorkerID,
		payment.Amount,
		payment.Notes,
	).Scan(
		&result.ID,
		&result.PayrollID,
		&result.WorkerID,
		&result.SpecialRateID,
		&result.PatientID,
		&result.SupervisedWorkerID,
		&result.Amount,
		&result.Notes,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return extra.Payment{}, fmt.Errorf("failed to create extra payment: %w", err)
	}

	return result, nil
}

// GetByID implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (extra.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.id, x.payroll_id, x.worker_id, x.special_rate_id, x.patient_id, x.supervised_worker_id,
		       x.amount, x.notes, x.created_at, x.updated_at,
		       w.first_name || ' ' || w.last_name,
		       p.first_name || ' ' || p.last_name,
		       sw.first_name || ' ' || sw.last_name,
		       sr.code, sr.label
		FROM extra_payments x
		JOIN workers w ON w.id = x.worker_id
		LEFT JOIN patients p ON p.id = x.patient_id
		LEFT JOIN workers sw ON sw.id = x.supervised_worker_id
		JOIN special_rates sr ON sr.id = x.special_rate_id
		WHERE x.id = $1
	`

	var result extra.Payment
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.PayrollID,
		&result.WorkerID,
		&result.SpecialRateID,
		&result.PatientID,
		&result.SupervisedWorkerID,
		&result.Amount,
		&result.Notes,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.WorkerName,
		&result.PatientName,
		&result.SupervisedWorkerName,
		&result.SpecialRateCode,
		&result.SpecialRateLabel,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return extra.Payment{}, extra.ErrPaymentNotFound
	}

	if err != nil {
		return extra.Payment{}, fmt.Errorf("failed to get extra payment: %w", err)
	}

	return result, nil
}

// Update implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) Update(ctx context.Context, req extra.UpdatePaymentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE extra_payments
		SET special_rate_id = COALESCE($1, special_rate_id),
		    patient_id = COALESCE($2, patient_id),
		    supervised_worker_id = COALESCE($3, supervised_worker_id),
		    amount = COALESCE($4, amount),
		    notes = COALESCE($5, notes),
		    updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, req.SpecialRateID, req.PatientID, req.SupervisedWorkerID, req.Amount, req.Notes, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update extra payment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return extra.ErrPaymentNotFound
	}

	return nil
}

// Delete implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM extra_payments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra payment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return extra.ErrPaymentNotFound
	}

	return nil
}

// ListDetailedForPayroll implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) ListDetailedForPayroll(ctx context.Context, payrollID string) ([]extra.PaymentDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.id, x.payroll_id,
		       x.worker_id, w.first_name || ' ' || w.last_name,
		       x.patient_id, p.first_name || ' ' || p.last_name,
		       x.supervised_worker_id, sw.first_name || ' ' || sw.last_name,
		       sr.code, sr.label,
		       x.amount, x.notes
		FROM extra_payments x
		JOIN workers w ON w.id = x.worker_id
		LEFT JOIN patients p ON p.id = x.patient_id
		LEFT JOIN workers sw ON sw.id = x.supervised_worker_id
		JOIN special_rates sr ON sr.id = x.special_rate_id
		WHERE x.payroll_id = $1
		ORDER BY w.last_name ASC, w.first_name ASC, sr.code ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra payments: %w", err)
	}
	defer rows.Close()

	var payments []extra.PaymentDetail
	for rows.Next() {
		var d extra.PaymentDetail
		err := rows.Scan(
			&d.ID,
			&d.PayrollID,
			&d.WorkerID,
			&d.WorkerName,
			&d.PatientID,
			&d.PatientName,
			&d.SupervisedWorkerID,
			&d.SupervisedWorkerName,
			&d.SpecialRateCode,
			&d.SpecialRateLabel,
			&d.Amount,
			&d.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra payment: %w", err)
		}
		payments = append(payments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, nil
}

// TotalsByWorkerForPayroll implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) TotalsByWorkerForPayroll(ctx context.Context, payrollID string) ([]extra.WorkerTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.worker_id, w.first_name || ' ' || w.last_name, COALESCE(SUM(x.amount), 0)
		FROM extra_payments x
		JOIN workers w ON w.id = x.worker_id
		WHERE x.payroll_id = $1
		GROUP BY x.worker_id, w.first_name, w.last_name
		ORDER BY w.last_name ASC, w.first_name ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to total extra payments by worker: %w", err)
	}
	defer rows.Close()

	var totals []extra.WorkerTotal
	for rows.Next() {
		var t extra.WorkerTotal
		if err := rows.Scan(&t.WorkerID, &t.WorkerName, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan worker total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}

// TotalsByCodeForPayroll implements extra.PaymentRepository.
func (r *extraPaymentRepositoryImpl) TotalsByCodeForPayroll(ctx context.Context, payrollID string) ([]extra.CodeTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.special_rate_id, sr.code, sr.label, sr.unit_rate,
		       COUNT(*), COALESCE(SUM(x.amount), 0)
		FROM extra_payments x
		JOIN special_rates sr ON sr.id = x.special_rate_id
		WHERE x.payroll_id = $1
		GROUP BY x.special_rate_id, sr.code, sr.label, sr.unit_rate
		ORDER BY sr.code ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to total extra payments by code: %w", err)
	}
	defer rows.Close()

	var totals []extra.CodeTotal
	for rows.Next() {
		var t extra.CodeTotal
		if err := rows.Scan(&t.SpecialRateID, &t.Code, &t.Label, &t.UnitRate, &t.Count, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan code total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return totals, nil
}
