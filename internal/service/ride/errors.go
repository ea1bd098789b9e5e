package ride

import "errors"

var (
	ErrCapacityExceeded = errors.New("maximum number of active rides reached")
	ErrCourierBusy      = errors.New("courier already has an active ride")
	ErrRideExists       = errors.New("ride with this id already exists")
	ErrRideNotFound     = errors.New("ride not found")
)
