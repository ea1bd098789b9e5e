//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_get_test
package booking_get

import (
	"courier-booking/internal/service/booking"
	"courier-booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Summary() booking.Summary
}
