package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/role"
	"github.com/mhc-billing/payroll-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, ro role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (id, code, name, is_billable, is_active)
		VALUES (uuidv7(), $1, $2, $3, TRUE)
		RETURNING id, code, name, is_billable, is_active, created_at, updated_at
	`

	var result role.Role
	err := q.QueryRow(ctx, query, ro.Code, ro.Name, ro.IsBillable).Scan(
		&result.ID,
		&result.Code,
		&result.Name,
		&result.IsBillable,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "roles_code_key") {
			return role.Role{}, role.ErrRoleCodeExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return result, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, is_billable, is_active, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Code,
		&result.Name,
		&result.IsBillable,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}

	if err != nil {
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return result, nil
}

// GetByCode implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByCode(ctx context.Context, code string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, is_billable, is_active, created_at, updated_at
		FROM roles
		WHERE code = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, code).Scan(
		&result.ID,
		&result.Code,
		&result.Name,
		&result.IsBillable,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}

	if err != nil {
		return role.Role{}, fmt.Errorf("failed to get role by code: %w", err)
	}

	return result, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, is_billable, is_active, created_at, updated_at
		FROM roles
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var ro role.Role
		err := rows.Scan(
			&ro.ID,
			&ro.Code,
			&ro.Name,
			&ro.IsBillable,
			&ro.IsActive,
			&ro.CreatedAt,
			&ro.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, ro)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, req role.UpdateRoleRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = COALESCE($1, name),
		    is_billable = COALESCE($2, is_billable),
		    is_active = COALESCE($3, is_active),
		    updated_at = NOW()
		WHERE id = $4
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.IsBillable, req.IsActive, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM roles WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return role.ErrRoleInUse
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}
