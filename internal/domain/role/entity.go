package role

import "time"

// Role - billing role a worker can hold (e.g. technician, supervisor tier)
type Role struct {
	ID         string
	Code       string
	Name       string
	IsBillable bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
