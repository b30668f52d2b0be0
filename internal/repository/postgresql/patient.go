package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/patient"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type patientRepositoryImpl struct {
	db *database.DB
}

func NewPatientRepository(db *database.DB) patient.PatientRepository {
	return &patientRepositoryImpl{db: db}
}

// Create implements patient.PatientRepository.
func (r *patientRepositoryImpl) Create(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO patients (id, first_name, last_name, record_number, insurer_id, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, TRUE)
		RETURNING id, first_name, last_name, record_number, insurer_id, is_active, created_at, updated_at
	`

	var result patient.Patient
	err := q.QueryRow(ctx, query, p.FirstName, p.LastName, p.RecordNumber, p.InsurerID).Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&result.RecordNumber,
		&result.InsurerID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "patients_insurer_id_fkey") {
			return patient.Patient{}, patient.ErrInsurerNotFound
		}
		return patient.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}

	return result, nil
}

// GetByID implements patient.PatientRepository.
func (r *patientRepositoryImpl) GetByID(ctx context.Context, id string) (patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.first_name, p.last_name, p.record_number, p.insurer_id, p.is_active,
		       p.created_at, p.updated_at, i.name AS insurer_name
		FROM patients p
		LEFT JOIN insurers i ON i.id = p.insurer_id
		WHERE p.id = $1
	`

	var result patient.Patient
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&result.RecordNumber,
		&result.InsurerID,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.InsurerName,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return patient.Patient{}, patient.ErrPatientNotFound
	}

	if err != nil {
		return patient.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}

	return result, nil
}

// List implements patient.PatientRepository.
func (r *patientRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]patient.Patient, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.first_name, p.last_name, p.record_number, p.insurer_id, p.is_active,
		       p.created_at, p.updated_at, i.name AS insurer_name
		FROM patients p
		LEFT JOIN insurers i ON i.id = p.insurer_id
		WHERE ($1 = FALSE OR p.is_active = TRUE)
		ORDER BY p.last_name ASC, p.first_name ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []patient.Patient
	for rows.Next() {
		var p patient.Patient
		err := rows.Scan(
			&p.ID,
			&p.FirstName,
			&p.LastName,
			&p.RecordNumber,
			&p.InsurerID,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.InsurerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return patients, nil
}

// Update implements patient.PatientRepository.
func (r *patientRepositoryImpl) Update(ctx context.Context, req patient.UpdatePatientRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE patients
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    record_number = COALESCE($3, record_number),
		    insurer_id = COALESCE($4, insurer_id),
		    is_active = COALESCE($5, is_active),
		    updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, req.FirstName, req.LastName, req.RecordNumber, req.InsurerID, req.IsActive, req.ID)
	if err != nil {
		if strings.Contains(err.Error(), "patients_insurer_id_fkey") {
			return patient.ErrInsurerNotFound
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}

	return nil
}

// Delete implements patient.PatientRepository.
func (r *patientRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE patients
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate patient: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return patient.ErrPatientNotFound
	}

	return nil
}
