package contracts

import (
	"context"
	"time"
)

// CounterStore holds expiring integer counters.
type CounterStore interface {
	// IncrementWithTTL adds one to key and returns the new value. The TTL is
	// applied when the key is created.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}
