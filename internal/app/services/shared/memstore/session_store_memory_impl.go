package memstore

import (
	"aesthetics-service/internal/app/contracts"
	"context"
	"sync"
	"time"
)

type session struct {
	slots     map[string]string
	expiresAt time.Time
}

// sessionStore is the in-process SessionStore used by tests and by demo runs
// without Redis. Like the Redis hash, a session lives for ttl after its last
// write; a zero ttl keeps sessions until they are cleared.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) contracts.SessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *sessionStore) Get(ctx context.Context, sessionID, slot string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(s.now())
	current, ok := s.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	value, found := current.slots[slot]
	return value, found, nil
}

func (s *sessionStore) Set(ctx context.Context, sessionID string, slots map[string]string) error {
	if len(slots) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	current, ok := s.sessions[sessionID]
	if !ok {
		current = &session{slots: make(map[string]string, len(slots))}
		s.sessions[sessionID] = current
	}
	for slot, value := range slots {
		current.slots[slot] = value
	}
	if s.ttl > 0 {
		current.expiresAt = now.Add(s.ttl)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string, slots ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(s.now())
	current, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, slot := range slots {
		delete(current.slots, slot)
	}
	if len(current.slots) == 0 {
		delete(s.sessions, sessionID)
	}
	return nil
}

func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	s.sweep(s.now())
	return nil
}

// sweep drops expired sessions. Callers hold mu.
func (s *sessionStore) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, current := range s.sessions {
		if !now.Before(current.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
