package role

import (
	"context"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/role"
)

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) role.RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	isBillable := true
	if req.IsBillable != nil {
		isBillable = *req.IsBillable
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Code:       req.Code,
		Name:       req.Name,
		IsBillable: isBillable,
		IsActive:   true,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *RoleServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(r), nil
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context, activeOnly bool) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if err := s.roleRepo.Update(ctx, req); err != nil {
		return role.RoleResponse{}, err
	}

	return s.GetRole(ctx, req.ID)
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.roleRepo.Delete(ctx, id)
}

func mapToResponse(r role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:         r.ID,
		Code:       r.Code,
		Name:       r.Name,
		IsBillable: r.IsBillable,
		IsActive:   r.IsActive,
	}
}
