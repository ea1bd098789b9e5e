//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_confirm_post_test
package location_confirm_post

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
	Confirm() (entities.Location, error)
}
