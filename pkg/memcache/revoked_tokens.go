// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out tokens until they would have expired
// on their own.
type RevokedTokenStore interface {
	Revoke(token string, until time.Time)

	// IsRevoked reports whether token was revoked and is still inside its
	// revocation window.
	IsRevoked(token string) bool

	// Sweep drops entries whose window has passed and returns how many were removed.
	Sweep() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(token string, until time.Time) {
	if token == "" || !until.After(s.now()) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = until
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	until, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(until) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *RevokedTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, until := range s.data {
		if now.After(until) {
			delete(s.data, token)
			removed++
		}
	}
	return removed
}
