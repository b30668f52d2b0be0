package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentHasHours = errors.New("assignment has recorded hours and cannot be deleted")
)
