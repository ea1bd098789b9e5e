package token_bucket

import (
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

/*
алгоритм простой: Allow возвращает true/false, то есть мы либо принимаем запрос, либо отклоняем.
токены копятся дробно, поэтому медленная скорость пополнения не теряется на округлении.
*/

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	clock      clockwork.Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, clockwork.NewRealClock())
}

func NewTokenBucketWithClock(capacity int, refillRate float64, clock clockwork.Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: clock.Now(),
		clock:      clock,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// Tokens возвращает число целых токенов, доступных прямо сейчас.
func (t *TokenBucket) Tokens() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return int(math.Floor(t.tokens))
}

func (t *TokenBucket) refill() {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
