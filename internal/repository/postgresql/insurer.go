package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/master/insurer"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type insurerRepositoryImpl struct {
	db *database.DB
}

func NewInsurerRepository(db *database.DB) insurer.InsurerRepository {
	return &insurerRepositoryImpl{db: db}
}

// Create implements insurer.InsurerRepository.
func (r *insurerRepositoryImpl) Create(ctx context.Context, ins insurer.Insurer) (insurer.Insurer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO insurers (id, name, is_active)
		VALUES (uuidv7(), $1, TRUE)
		RETURNING id, name, is_active, created_at, updated_at
	`

	var result insurer.Insurer
	err := q.QueryRow(ctx, query, ins.Name).Scan(
		&result.ID,
		&result.Name,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "insurers_name_key") {
			return insurer.Insurer{}, insurer.ErrInsurerNameExists
		}
		return insurer.Insurer{}, fmt.Errorf("failed to create insurer: %w", err)
	}

	return result, nil
}

// GetByID implements insurer.InsurerRepository.
func (r *insurerRepositoryImpl) GetByID(ctx context.Context, id string) (insurer.Insurer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM insurers
		WHERE id = $1
	`

	var result insurer.Insurer
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return insurer.Insurer{}, insurer.ErrInsurerNotFound
	}

	if err != nil {
		return insurer.Insurer{}, fmt.Errorf("failed to get insurer: %w", err)
	}

	return result, nil
}

// List implements insurer.InsurerRepository.
func (r *insurerRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]insurer.Insurer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM insurers
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurers: %w", err)
	}
	defer rows.Close()

	var insurers []insurer.Insurer
	for rows.Next() {
		var ins insurer.Insurer
		err := rows.Scan(
			&ins.ID,
			&ins.Name,
			&ins.IsActive,
			&ins.CreatedAt,
			&ins.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan insurer: %w", err)
		}
		insurers = append(insurers, ins)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return insurers, nil
}

// Update implements insurer.InsurerRepository.
func (r *insurerRepositoryImpl) Update(ctx context.Context, req insurer.UpdateInsurerRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE insurers
		SET name = COALESCE($1, name),
		    is_active = COALESCE($2, is_active),
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.IsActive, req.ID)
	if err != nil {
		if strings.Contains(err.Error(), "insurers_name_key") {
			return insurer.ErrInsurerNameExists
		}
		return fmt.Errorf("failed to update insurer: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return insurer.ErrInsurerNotFound
	}

	return nil
}

// Delete implements insurer.InsurerRepository.
func (r *insurerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE insurers
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate insurer: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return insurer.ErrInsurerNotFound
	}

	return nil
}
