package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInsurerNotFound = errors.New("insurer not found")
)
