package patient

import "time"

// Patient - care recipient whose authorized services are billed
type Patient struct {
	ID           string
	FirstName    string
	LastName     string
	RecordNumber *string
	InsurerID    *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	InsurerName *string
}
