// Package store provides StatusStore implementations: in-memory for dev and
// tests, PostgreSQL for production.
package store

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"votercheck/internal/domain"
	"votercheck/pkg/platform/sentinel"
)

// MemoryStatusStore keeps statuses in process memory. Upserts replace the
// whole record under one lock so readers never see a half-written status.
type MemoryStatusStore struct {
	mu      sync.RWMutex
	byVoter map[string]domain.RegistrationStatus
	voterOf map[string]string // status id -> voter id
}

// NewMemoryStatusStore constructs an empty in-memory status store.
func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{
		byVoter: make(map[string]domain.RegistrationStatus),
		voterOf: make(map[string]string),
	}
}

func (s *MemoryStatusStore) GetCurrent(_ context.Context, voterID string) (domain.RegistrationStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status, ok := s.byVoter[voterID]; ok {
		return copyStatus(status), nil
	}
	// Never checked and never seeded: reads as UNCHECKED.
	return domain.RegistrationStatus{VoterID: voterID, Code: domain.StatusUnchecked}, nil
}

func (s *MemoryStatusStore) GetByID(_ context.Context, statusID string) (domain.RegistrationStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if voterID, ok := s.voterOf[statusID]; ok {
		return copyStatus(s.byVoter[voterID]), nil
	}
	return domain.RegistrationStatus{}, fmt.Errorf("status %s: %w", statusID, sentinel.ErrNotFound)
}

func (s *MemoryStatusStore) Upsert(_ context.Context, voterID string, code domain.StatusCode, detail map[string]string, checkedAt time.Time) (domain.RegistrationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if existing, ok := s.byVoter[voterID]; ok {
		id = existing.ID
	}

	status := domain.RegistrationStatus{
		ID:        id,
		VoterID:   voterID,
		Code:      code,
		Detail:    copyDetail(detail),
		CheckedAt: checkedAt,
	}
	s.byVoter[voterID] = status
	s.voterOf[id] = voterID
	return copyStatus(status), nil
}

func (s *MemoryStatusStore) NewEphemeral(identity domain.Identity) domain.RegistrationStatus {
	return Ephemeral(identity)
}

// Ephemeral builds the request-scoped UNCHECKED status used for anonymous
// lookups. Shared by all StatusStore implementations; never persisted.
func Ephemeral(_ domain.Identity) domain.RegistrationStatus {
	return domain.RegistrationStatus{Code: domain.StatusUnchecked}
}

func copyStatus(status domain.RegistrationStatus) domain.RegistrationStatus {
	status.Detail = copyDetail(status.Detail)
	return status
}

func copyDetail(detail map[string]string) map[string]string {
	if detail == nil {
		return nil
	}
	out := make(map[string]string, len(detail))
	maps.Copy(out, detail)
	return out
}
