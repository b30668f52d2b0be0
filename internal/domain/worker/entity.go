package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker - staff member delivering billable services
type Worker struct {
	ID           string
	FirstName    string
	LastName     string
	SupervisorID *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	SupervisorName *string
}

// RoleRate - one row of a worker's general-rate history for a role.
// EndDate nil means the rate is open-ended. Rows are append-mostly:
// a rate change closes the current row and inserts a new one.
type RoleRate struct {
	ID          string
	WorkerID    string
	RoleID      string
	GeneralRate decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	RoleCode *string
	RoleName *string
}
