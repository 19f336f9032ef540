package voter

import (
	"context"

	"votercheck/internal/domain"
)

// Store persists voter profiles. Implementations return wrapped
// sentinel.ErrNotFound for missing voters and wrapped sentinel.ErrConflict
// when an email resolves to more than one voter, so callers can translate
// those facts into domain errors.
type Store interface {
	Save(ctx context.Context, voter domain.Voter) error
	FindByID(ctx context.Context, id string) (domain.Voter, error)
	FindByEmail(ctx context.Context, email string) (domain.Voter, error)
}
