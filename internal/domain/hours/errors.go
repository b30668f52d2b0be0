package hours

import "errors"

var (
	ErrEntryNotFound      = errors.New("hours entry not found")
	ErrHoursLimitExceeded = errors.New("patient hours limit for the segment exceeded")
)
