//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=nominatim_test
package nominatim

import (
	"context"
	"net/http"
	"time"

	"courier-booking/pkg/logger"
)

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Cache хранит ответы геокодера. Ошибки кэша не прерывают запрос.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
