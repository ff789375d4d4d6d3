package redis

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type counterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) contracts.CounterStore {
	return &counterStore{client: client}
}

func (s *counterStore) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return int(incr.Val()), nil
}
