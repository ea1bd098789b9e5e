package dispatch

import "errors"

var (
	ErrCapacityExceeded   = errors.New("maximum number of active rides reached")
	ErrNoCourierAvailable = errors.New("no courier available")
)
