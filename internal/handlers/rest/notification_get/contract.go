//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_get_test
package notification_get

import (
	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Current() (entities.Celebration, bool)
}
