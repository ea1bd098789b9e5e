package system_metrics

import (
	"context"
	"time"
)

type Collector func(ctx context.Context) error

type SystemMetrics struct {
	collect  Collector
	interval time.Duration
}

func NewSystemMetrics(collect Collector, interval time.Duration) *SystemMetrics {
	return &SystemMetrics{
		collect:  collect,
		interval: interval,
	}
}

func (s *SystemMetrics) TTL() time.Duration {
	return s.interval
}

func (s *SystemMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return s.collect(ctxWithTimeout)
}

func (s *SystemMetrics) Info() string {
	return "system metrics"
}
