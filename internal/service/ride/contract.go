//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ride_test
package ride

import (
	"context"

	"courier-booking/pkg/background"
	"courier-booking/pkg/logger"
)

type registryLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Scheduler запускает и останавливает периодические задачи по ключу.
// Stop должен быть синхронным: после возврата задача больше не выполняется.
type Scheduler interface {
	Start(key string, task background.Task) error
	Stop(key string) bool
}

// MotionTaskFactory строит задачу движения курьера для поездки.
type MotionTaskFactory interface {
	NewMotionTask(rideID string, step func(ctx context.Context) error) background.Task
}
