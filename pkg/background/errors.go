package background

import "errors"

var (
	ErrInvalidTTL   = errors.New("task TTL must be positive")
	ErrTaskExists   = errors.New("task with this key is already running")
	ErrWorkerClosed = errors.New("worker is closed")
)
