// Package memory кэш в памяти процесса с временем жизни записей.
// Используется, когда Redis не настроен.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// maxEntries ограничивает рост кэша: при переполнении сначала удаляются протухшие записи,
// затем весь кэш.
const maxEntries = 4096

type entry struct {
	value     []byte
	expiresAt time.Time
}

type Cache struct {
	clock clockwork.Clock

	mu   sync.Mutex
	data map[string]entry
}

func New(clock clockwork.Clock) *Cache {
	return &Cache{
		clock: clock,
		data:  make(map[string]entry),
	}
}

// Get возвращает значение и признак попадания.
func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.data, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if _, exists := c.data[key]; !exists && len(c.data) >= maxEntries {
		c.evict(now)
	}

	c.data[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}

func (c *Cache) evict(now time.Time) {
	for key, e := range c.data {
		if !now.Before(e.expiresAt) {
			delete(c.data, key)
		}
	}
	if len(c.data) >= maxEntries {
		clear(c.data)
	}
}
