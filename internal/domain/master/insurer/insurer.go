package insurer

import (
	"context"
	"errors"
	"time"

	"github.com/mhc-billing/payroll-backend-go/internal/pkg/validator"
)

type Insurer struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrInsurerNotFound   = errors.New("insurer not found")
	ErrInsurerNameExists = errors.New("insurer with this name already exists")
)

type CreateInsurerRequest struct {
	Name string `json:"name"`
}

func (r *CreateInsurerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInsurerRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type InsurerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type InsurerRepository interface {
	Create(ctx context.Context, insurer Insurer) (Insurer, error)
	GetByID(ctx context.Context, id string) (Insurer, error)
	List(ctx context.Context, activeOnly bool) ([]Insurer, error)
	Update(ctx context.Context, req UpdateInsurerRequest) error
	Delete(ctx context.Context, id string) error
}
