package voter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"votercheck/internal/domain"
	"votercheck/pkg/platform/sentinel"
)

// MemoryStore keeps voters in process memory for dev and tests. It
// intentionally allows duplicate emails so the ambiguous-recipient path in
// the login flow stays testable.
type MemoryStore struct {
	mu     sync.RWMutex
	voters map[string]domain.Voter
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{voters: make(map[string]domain.Voter)}
}

func (s *MemoryStore) Save(_ context.Context, voter domain.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters[voter.ID] = voter
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if voter, ok := s.voters[id]; ok {
		return voter, nil
	}
	return domain.Voter{}, fmt.Errorf("voter %s: %w", id, sentinel.ErrNotFound)
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Voter
	for _, voter := range s.voters {
		if strings.EqualFold(voter.Email, email) {
			matches = append(matches, voter)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Voter{}, fmt.Errorf("voter with email %s: %w", email, sentinel.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Voter{}, fmt.Errorf("email %s matches %d voters: %w", email, len(matches), sentinel.ErrConflict)
	}
}
