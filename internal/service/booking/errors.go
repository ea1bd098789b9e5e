package booking

import "errors"

var (
	ErrDispatchInProgress   = errors.New("dispatch already in progress")
	ErrConfirmationRequired = errors.New("ride cancellation must be confirmed")
	ErrNoPreviousBooking    = errors.New("no previous booking to repeat")
)
