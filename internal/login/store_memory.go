package login

import (
	"context"
	"fmt"
	"sync"
	"time"

	"votercheck/pkg/platform/sentinel"
)

type memoryToken struct {
	voterID   string
	expiresAt time.Time
}

// MemoryTokenStore is an in-memory TokenStore for development and tests.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
	now    func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]memoryToken),
		now:    time.Now,
	}
}

func (s *MemoryTokenStore) Save(_ context.Context, token, voterID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = memoryToken{
		voterID:   voterID,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryTokenStore) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return "", fmt.Errorf("login token: %w", sentinel.ErrNotFound)
	}
	delete(s.tokens, token)

	if s.now().After(entry.expiresAt) {
		return "", fmt.Errorf("login token: %w", sentinel.ErrExpired)
	}
	return entry.voterID, nil
}
