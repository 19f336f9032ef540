// Package authority wraps the external registration authority. Clients return
// an Outcome sum rather than throwing: "not registered" is an ordinary answer,
// and only transport-level faults surface as Go errors for the resolver to
// absorb.
package authority

import (
	"context"

	"votercheck/internal/domain"
)

// OutcomeKind enumerates the answers a registration authority can give.
type OutcomeKind string

const (
	// OutcomeMatch means the authority found exactly one registration record.
	OutcomeMatch OutcomeKind = "match"
	// OutcomeNoMatch means the authority definitively knows no registration.
	OutcomeNoMatch OutcomeKind = "no_match"
	// OutcomeAmbiguous means the authority found multiple candidate records
	// and cannot pick one without manual verification.
	OutcomeAmbiguous OutcomeKind = "ambiguous"
	// OutcomeError means the authority answered with an error payload.
	OutcomeError OutcomeKind = "error"
)

// Outcome is one lookup result. Detail is populated only for OutcomeMatch and
// carries the authority's descriptive fields (polling place, ballot status)
// verbatim. Err is populated only for OutcomeError.
type Outcome struct {
	Kind   OutcomeKind
	Detail map[string]string
	Err    error
}

// Match builds a match outcome with the authority's descriptive fields.
func Match(detail map[string]string) Outcome {
	return Outcome{Kind: OutcomeMatch, Detail: detail}
}

// NoMatch builds a definitive non-match outcome.
func NoMatch() Outcome {
	return Outcome{Kind: OutcomeNoMatch}
}

// Ambiguous builds a multiple-candidates outcome.
func Ambiguous() Outcome {
	return Outcome{Kind: OutcomeAmbiguous}
}

// Errored builds an error outcome from an authority or transport fault.
func Errored(err error) Outcome {
	return Outcome{Kind: OutcomeError, Err: err}
}

//go:generate mockgen -source=client.go -destination=../mocks/authority_mocks.go -package=mocks

// Client queries the external registration authority. Implementations must
// honor ctx cancellation and return an error only for transport faults; every
// in-protocol answer, including "not found", is an Outcome.
type Client interface {
	Lookup(ctx context.Context, identity domain.Identity) (Outcome, error)
}
