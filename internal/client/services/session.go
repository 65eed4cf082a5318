package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/common"
)

// Session is the in-memory handle to an authenticated session. It holds the
// derived symmetric key for the session's lifetime and nothing else: the key
// is never persisted, logged, or transmitted.
//
// A Session is handed out by AuthService and passed explicitly to every
// operation that needs key material, so there is no process-global session
// state. Once wiped (logout) or expired, the handle is permanently unusable
// and a new login is required.
type Session struct {
	mu        sync.RWMutex
	key       []byte
	createdAt time.Time
	ttl       time.Duration
}

func newSession(key []byte, ttl time.Duration) *Session {
	return &Session{key: key, createdAt: time.Now(), ttl: ttl}
}

// Key returns the session's symmetric key, or an error if the session has
// been logged out or outlived its TTL. Callers must not retain or mutate
// the returned slice. Safe to call on a nil receiver.
func (s *Session) Key() ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: not logged in", common.ErrSessionExpired)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, fmt.Errorf("%w: logged out", common.ErrSessionExpired)
	}
	if s.ttl > 0 && time.Since(s.createdAt) > s.ttl {
		return nil, fmt.Errorf("%w: ttl %s exceeded", common.ErrSessionExpired, s.ttl)
	}
	return s.key, nil
}

// Valid reports whether the session can still produce a key.
func (s *Session) Valid() bool {
	_, err := s.Key()
	return err == nil
}

// wipe zeroes the key material and invalidates the handle. Idempotent.
func (s *Session) wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()

	common.WipeByteArray(s.key)
	s.key = nil
}
