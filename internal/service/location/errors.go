package location

import "errors"

var (
	ErrUnknownTarget      = errors.New("unknown location target")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrSelectionClosed    = errors.New("location selection is not open")
	ErrNothingToConfirm   = errors.New("no pending location to confirm")
)
