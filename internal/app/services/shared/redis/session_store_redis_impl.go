package redis

import (
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/pkg/constvars"
	"aesthetics-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore keeps every session as one hash, so clearing a session
// is a single DEL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) contracts.SessionStore {
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

func (s *sessionStore) Get(ctx context.Context, sessionID, slot string) (string, bool, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), slot).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, exceptions.ErrRedisGet(err)
	}
	return value, true, nil
}

func (s *sessionStore) Set(ctx context.Context, sessionID string, slots map[string]string) error {
	if len(slots) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(slots))
	for slot, value := range slots {
		values[slot] = value
	}

	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string, slots ...string) error {
	if len(slots) == 0 {
		return nil
	}

	err := s.client.HDel(ctx, sessionKey(sessionID), slots...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
