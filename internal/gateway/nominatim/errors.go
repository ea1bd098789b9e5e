package nominatim

import "errors"

var (
	ErrNotFound         = errors.New("geocoder: nothing found")
	ErrUnexpectedStatus = errors.New("geocoder: unexpected status")
	ErrMalformedPayload = errors.New("geocoder: malformed payload")
)
