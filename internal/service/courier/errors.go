package courier

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrInvalidRating    = errors.New("invalid rating")
	ErrInvalidVehicle   = errors.New("invalid vehicle kind")

	ErrCourierNotFound = errors.New("courier not found")
)
