package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("role not found")
	ErrRoleCodeExists = errors.New("role with this code already exists")
	ErrRoleInUse      = errors.New("role is referenced by existing assignments")
)
