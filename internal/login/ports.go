package login

import (
	"context"
	"time"

	"votercheck/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/login_mocks.go -package=mocks

// TokenStore holds single-use login tokens. A token maps to a voter id for at
// most its TTL and is destroyed on first consumption.
type TokenStore interface {
	// Save stores the token for the voter. Overwrites an existing token
	// with the same value (tokens are random UUIDs, so this never happens
	// in practice).
	Save(ctx context.Context, token, voterID string, ttl time.Duration) error

	// Consume atomically looks up and deletes the token, returning the
	// voter id it was issued for. Returns sentinel.ErrNotFound when the
	// token is unknown, expired, or already used.
	Consume(ctx context.Context, token string) (string, error)
}

// Sender delivers login emails.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a rendered login email ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Directory resolves voters for the login flow. Satisfied by voter.Store;
// declared here to keep the dependency one-way.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (domain.Voter, error)
	FindByID(ctx context.Context, id string) (domain.Voter, error)
}
