package memstore

import (
	"aesthetics-service/internal/app/contracts"
	"context"
	"sync"
	"time"
)

type counter struct {
	value     int
	expiresAt time.Time
}

type counterStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

func NewMemoryCounterStore() contracts.CounterStore {
	return &counterStore{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

// IncrementWithTTL starts a window on the first increment of a key; the
// window is not extended by later increments. Expired windows are purged on
// every call.
func (s *counterStore) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for existing, c := range s.counters {
		if !now.Before(c.expiresAt) {
			delete(s.counters, existing)
		}
	}

	c, ok := s.counters[key]
	if !ok {
		c = &counter{expiresAt: now.Add(ttl)}
		s.counters[key] = c
	}
	c.value++
	return c.value, nil
}
