package dispatch

import (
	"math/rand/v2"

	"courier-booking/internal/entities"
	"courier-booking/pkg/geo"
)

// UniformMatcher выбирает любого свободного курьера с равной вероятностью.
type UniformMatcher struct {
	intN func(n int) int
}

func NewUniformMatcher() *UniformMatcher {
	return &UniformMatcher{intN: rand.IntN}
}

func (m *UniformMatcher) Match(_ entities.Order, candidates []entities.Courier) entities.Courier {
	return candidates[m.intN(len(candidates))]
}

// OffsetSeeder ставит курьера на фиксированном смещении от точки забора.
type OffsetSeeder struct {
	dLat float64
	dLng float64
}

func NewOffsetSeeder(dLat, dLng float64) *OffsetSeeder {
	return &OffsetSeeder{dLat: dLat, dLng: dLng}
}

func (s *OffsetSeeder) Seed(order entities.Order, _ entities.Courier) geo.Point {
	return geo.Offset(order.Pickup, s.dLat, s.dLng)
}
