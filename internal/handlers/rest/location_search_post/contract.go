//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_search_post_test
package location_search_post

import "courier-booking/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SearchByText(query string) (bool, error)
}
