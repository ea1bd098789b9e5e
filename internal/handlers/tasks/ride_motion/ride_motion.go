package ride_motion

import (
	"context"
	"fmt"
	"time"

	"courier-booking/pkg/background"
)

// RideMotion один шаг движения курьера к точке забора.
type RideMotion struct {
	rideID   string
	step     func(ctx context.Context) error
	interval time.Duration
}

func NewRideMotion(rideID string, step func(ctx context.Context) error, interval time.Duration) *RideMotion {
	return &RideMotion{
		rideID:   rideID,
		step:     step,
		interval: interval,
	}
}

func (r *RideMotion) TTL() time.Duration {
	return r.interval
}

func (r *RideMotion) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	return r.step(ctxWithTimeout)
}

func (r *RideMotion) Info() string {
	return fmt.Sprintf("ride motion %s", r.rideID)
}

// Factory создает задачи движения с общим интервалом.
type Factory struct {
	interval time.Duration
}

func NewFactory(interval time.Duration) *Factory {
	return &Factory{interval: interval}
}

func (f *Factory) NewMotionTask(rideID string, step func(ctx context.Context) error) background.Task {
	return NewRideMotion(rideID, step, f.interval)
}
