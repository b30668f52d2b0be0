package payroll

import "errors"

var (
	ErrPayrollNotFound        = errors.New("payroll not found")
	ErrPayrollInvalidRange    = errors.New("payroll end date must not be before start date")
	ErrPayrollOverlap         = errors.New("payroll period overlaps an existing payroll")
	ErrPayrollHasHours        = errors.New("payroll dates cannot change once hours are recorded")
	ErrPayrollLocked          = errors.New("payroll is finalized and cannot be modified")
	ErrSegmentNotFound        = errors.New("payroll segment not found")
	ErrPatientPayrollNotFound = errors.New("patient is not part of this payroll")
)
