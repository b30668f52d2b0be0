package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/specialrate"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type specialRateRepositoryImpl struct {
	db *database.DB
}

func NewSpecialRateRepository(db *database.DB) specialrate.SpecialRateRepository {
	return &specialRateRepositoryImpl{db: db}
}

// Create implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) Create(ctx context.Context, sr specialrate.SpecialRate) (specialrate.SpecialRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_rates (id, code, label, billing_code, unit_rate, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, TRUE)
		RETURNING id, code, label, billing_code, unit_rate, is_active, created_at, updated_at
	`

	var result specialrate.SpecialRate
	err := q.QueryRow(ctx, query, sr.Code, sr.Label, sr.BillingCode, sr.UnitRate).Scan(
		&result.ID,
		&result.Code,
		&result.Label,
		&result.BillingCode,
		&result.UnitRate,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "special_rates_code_key") {
			return specialrate.SpecialRate{}, specialrate.ErrSpecialRateCodeExists
		}
		return specialrate.SpecialRate{}, fmt.Errorf("failed to create special rate: %w", err)
	}

	return result, nil
}

// Seed implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) Seed(ctx context.Context, rates []specialrate.SpecialRate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_rates (id, code, label, billing_code, unit_rate, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (code) DO NOTHING
	`

	for _, sr := range rates {
		if _, err := q.Exec(ctx, query, sr.Code, sr.Label, sr.BillingCode, sr.UnitRate, sr.IsActive); err != nil {
			return fmt.Errorf("failed to seed special rate %s: %w", sr.Code, err)
		}
	}

	return nil
}

// GetByID implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) GetByID(ctx context.Context, id string) (specialrate.SpecialRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, billing_code, unit_rate, is_active, created_at, updated_at
		FROM special_rates
		WHERE id = $1
	`

	var result specialrate.SpecialRate
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Code,
		&result.Label,
		&result.BillingCode,
		&result.UnitRate,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return specialrate.SpecialRate{}, specialrate.ErrSpecialRateNotFound
	}

	if err != nil {
		return specialrate.SpecialRate{}, fmt.Errorf("failed to get special rate: %w", err)
	}

	return result, nil
}

// GetByCode implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) GetByCode(ctx context.Context, code string) (specialrate.SpecialRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, billing_code, unit_rate, is_active, created_at, updated_at
		FROM special_rates
		WHERE code = $1
	`

	var result specialrate.SpecialRate
	err := q.QueryRow(ctx, query, code).Scan(
		&result.ID,
		&result.Code,
		&result.Label,
		&result.BillingCode,
		&result.UnitRate,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return specialrate.SpecialRate{}, specialrate.ErrSpecialRateNotFound
	}

	if err != nil {
		return specialrate.SpecialRate{}, fmt.Errorf("failed to get special rate by code: %w", err)
	}

	return result, nil
}

// List implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]specialrate.SpecialRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, billing_code, unit_rate, is_active, created_at, updated_at
		FROM special_rates
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list special rates: %w", err)
	}
	defer rows.Close()

	var specialRates []specialrate.SpecialRate
	for rows.Next() {
		var sr specialrate.SpecialRate
		err := rows.Scan(
			&sr.ID,
			&sr.Code,
			&sr.Label,
			&sr.BillingCode,
			&sr.UnitRate,
			&sr.IsActive,
			&sr.CreatedAt,
			&sr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan special rate: %w", err)
		}
		specialRates = append(specialRates, sr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return specialRates, nil
}

// Update implements specialrate.SpecialRateRepository.
func (r *specialRateRepositoryImpl) Update(ctx context.Context, req specialrate.UpdateSpecialRateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE special_rates
		SET label = COALESCE($1, label),
		    billing_code = COALESCE($2, billing_code),
		    unit_rate = COALESCE($3, unit_rate),
		    is_active = COALESCE($4, is_active),
		    updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, req.Label, req.BillingCode, req.UnitRate, req.IsActive, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update special rate: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return specialrate.ErrSpecialRateNotFound
	}

	return nil
}
