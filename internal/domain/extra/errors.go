package extra

import "errors"

var (
	ErrPaymentNotFound = errors.New("extra payment not found")
)
