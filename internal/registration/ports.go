package registration

import (
	"context"
	"time"

	"votercheck/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// StatusStore reads and writes the persisted RegistrationStatus owned by a
// voter. Implementations must apply Upsert atomically: concurrent upserts for
// the same voter are serialized by storage, last committed write wins, and a
// reader never observes a record mixing fields from two writes.
type StatusStore interface {
	// GetCurrent returns the voter's stored status as-is. It never triggers a
	// lookup. A voter with no stored record yet reads as UNCHECKED; the only
	// failure mode is storage unavailability.
	GetCurrent(ctx context.Context, voterID string) (domain.RegistrationStatus, error)

	// GetByID returns a stored status record by its own id, for status-record
	// endpoints. Returns sentinel.ErrNotFound (wrapped) when absent.
	GetByID(ctx context.Context, statusID string) (domain.RegistrationStatus, error)

	// Upsert replaces the voter's stored status fields and returns the updated
	// record. The record id is stable across upserts for the same voter.
	Upsert(ctx context.Context, voterID string, code domain.StatusCode, detail map[string]string, checkedAt time.Time) (domain.RegistrationStatus, error)

	// NewEphemeral constructs a request-scoped UNCHECKED status for an
	// anonymous identity. The result is never written to the store.
	NewEphemeral(identity domain.Identity) domain.RegistrationStatus
}
