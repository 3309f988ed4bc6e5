// Package session holds the in-process login session table. Sessions are
// deliberately not persisted: a restart logs everyone out.
package session

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FarFuture is the last representable 32-bit Unix instant. Sessions
// created under the default policy expire then, so in practice only an
// explicit logout removes a session.
var FarFuture = time.Unix(math.MaxInt32, 0)

// Session binds an opaque token to a username until it expires or is
// revoked.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session's expiry instant has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store issues, validates and revokes login sessions.
type Store interface {
	Create(username string) string
	Validate(token string) (Session, bool)
	Revoke(token string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	lifetime time.Duration
}

// NewStore returns an in-memory session store. Lifetimes <= 0 select the
// FarFuture expiry policy.
func NewStore(lifetime time.Duration) Store {
	return &memoryStore{
		sessions: make(map[string]Session),
		lifetime: lifetime,
	}
}

// Create issues a fresh token for the username. Every login gets its own
// token; tokens are never reused.
func (s *memoryStore) Create(username string) string {
	token := uuid.New().String()

	expiresAt := FarFuture
	if s.lifetime > 0 {
		expiresAt = time.Now().Add(s.lifetime)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
	}
	return token
}

// Validate resolves a token to its session. Unknown tokens fail; expired
// sessions are deleted on detection and then fail the same way, so callers
// cannot tell the two apart.
func (s *memoryStore) Validate(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if sess.Expired() {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return Session{}, false
	}
	return sess, true
}

// Revoke removes the session unconditionally. Revoking an absent token is
// not an error.
func (s *memoryStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
