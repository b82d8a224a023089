package mem

import (
	"context"
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids (jti) until they expire.
type RevokedTokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[tokenID] = entry{expiresAt: now.Add(ttl)}
	s.sweepLocked(now)
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[tokenID]
	if !ok || s.now().After(e.expiresAt) {
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries; callers hold the write lock.
func (s *RevokedTokens) sweepLocked(now time.Time) {
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
