package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	GetByCode(ctx context.Context, code string) (Role, error)
	List(ctx context.Context, activeOnly bool) ([]Role, error)
	Update(ctx context.Context, req UpdateRoleRequest) error
	Delete(ctx context.Context, id string) error
}
