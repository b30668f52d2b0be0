package worker

import "errors"

var (
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrSupervisorNotFound = errors.New("supervisor not found")
	ErrRoleRateNotFound   = errors.New("worker role rate not found")
)
