package notification

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Effects описывает праздничные эффекты уведомления о назначенном курьере.
type Effects struct {
	BurstCount    int
	BurstTTL      time.Duration
	ConfettiCount int
	ConfettiTTL   time.Duration
}

// Center показывает одно уведомление за раз. Эффекты гаснут по таймерам,
// а само уведомление остается до подтверждения пользователем или замены новым.
type Center struct {
	log     centerLogger
	clock   clockwork.Clock
	effects Effects

	mu      sync.Mutex
	current *entities.Celebration
	timers  []clockwork.Timer
}

func New(log centerLogger, clock clockwork.Clock, effects Effects) *Center {
	return &Center{
		log:     log.With(logger.NewField("component", "notification_center")),
		clock:   clock,
		effects: effects,
	}
}

// Celebrate заменяет текущее уведомление новым для назначенной поездки.
func (c *Center) Celebrate(ride entities.Ride) entities.Celebration {
	celebration := entities.Celebration{
		ID:              uuid.NewString(),
		RideID:          ride.ID,
		Courier:         ride.Courier,
		Bursts:          scatter(c.effects.BurstCount),
		Confetti:        scatter(c.effects.ConfettiCount),
		BurstsVisible:   c.effects.BurstCount > 0,
		ConfettiVisible: c.effects.ConfettiCount > 0,
		CreatedAt:       c.clock.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimersLocked()
	c.current = &celebration

	id := celebration.ID
	if celebration.BurstsVisible {
		c.timers = append(c.timers, c.clock.AfterFunc(c.effects.BurstTTL, func() {
			c.expire(id, func(cur *entities.Celebration) {
				cur.Bursts = nil
				cur.BurstsVisible = false
			})
		}))
	}
	if celebration.ConfettiVisible {
		c.timers = append(c.timers, c.clock.AfterFunc(c.effects.ConfettiTTL, func() {
			c.expire(id, func(cur *entities.Celebration) {
				cur.Confetti = nil
				cur.ConfettiVisible = false
			})
		}))
	}

	c.log.Info("courier assigned notification raised",
		logger.NewField("notification_id", id),
		logger.NewField("ride_id", ride.ID),
		logger.NewField("courier", ride.Courier.Name),
	)
	return celebration.Clone()
}

// Current возвращает видимое уведомление.
func (c *Center) Current() (entities.Celebration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return entities.Celebration{}, false
	}
	return c.current.Clone(), true
}

// Acknowledge скрывает уведомление с указанным id.
func (c *Center) Acknowledge(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || c.current.ID != id {
		return fmt.Errorf("acknowledge %q: %w", id, ErrNotificationNotFound)
	}

	c.stopTimersLocked()
	c.current = nil
	return nil
}

// Clear скрывает текущее уведомление, если оно есть.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimersLocked()
	c.current = nil
}

func (c *Center) expire(id string, apply func(cur *entities.Celebration)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// таймер старого уведомления не должен трогать новое
	if c.current == nil || c.current.ID != id {
		return
	}
	apply(c.current)
}

func (c *Center) stopTimersLocked() {
	for _, timer := range c.timers {
		timer.Stop()
	}
	c.timers = nil
}

// scatter раскладывает частицы случайно по полю [0,100) x [0,100).
func scatter(n int) []entities.Particle {
	if n <= 0 {
		return nil
	}

	particles := make([]entities.Particle, n)
	for i := range particles {
		particles[i] = entities.Particle{
			X: rand.Float64() * 100,
			Y: rand.Float64() * 100,
		}
	}
	return particles
}
