// Package registration implements registration status resolution: deciding
// when to query the external authority versus serve the stored status,
// normalizing authority outcomes into the fixed status vocabulary, and
// persisting the result.
package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"votercheck/internal/domain"
	"votercheck/internal/registration/authority"
	"votercheck/internal/registration/metrics"
	"votercheck/pkg/requestcontext"
)

// Resolver orchestrates registration status resolution. It is the single
// place where authority faults become domain states: no error from the
// external authority ever escapes Resolve. Storage errors do propagate.
type Resolver struct {
	authority authority.Client
	statuses  StatusStore
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewResolver wires a resolver with its collaborators. metrics may be nil in
// tests.
func NewResolver(client authority.Client, statuses StatusStore, logger *slog.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{
		authority: client,
		statuses:  statuses,
		logger:    logger,
		metrics:   m,
	}
}

// Resolve turns a subject into a timestamped registration status.
//
// Authenticated subjects are served from the stored status unless forceRefresh
// is set or the status is still UNCHECKED. LOOKUP_FAILED and PENDING do not
// auto-retry without force; retry storms against a failing authority are the
// caller's choice to start, not ours.
//
// Anonymous subjects always perform a fresh lookup; there is nothing to cache
// against and the result is never persisted.
func (r *Resolver) Resolve(ctx context.Context, subject Subject, forceRefresh bool) (domain.RegistrationStatus, error) {
	if voter, ok := subject.Voter(); ok {
		current, err := r.statuses.GetCurrent(ctx, voter.ID)
		if err != nil {
			return domain.RegistrationStatus{}, fmt.Errorf("load current status: %w", err)
		}
		if !forceRefresh && current.Code != domain.StatusUnchecked {
			r.metrics.IncCacheServed()
			return current, nil
		}
	}
	return r.refresh(ctx, subject)
}

func (r *Resolver) refresh(ctx context.Context, subject Subject) (domain.RegistrationStatus, error) {
	identity := subject.Identity()
	checkedAt := requestcontext.Now(ctx)

	var code domain.StatusCode
	var detail map[string]string

	if !identity.IsLookupable() {
		code = domain.StatusLookupFailed
		detail = map[string]string{DetailKeyReason: "incomplete identity"}
	} else {
		start := time.Now()
		outcome, err := r.authority.Lookup(ctx, identity)
		r.metrics.ObserveAuthorityLatency(time.Since(start))
		if err != nil {
			outcome = authority.Errored(err)
		}
		code, detail = Normalize(outcome)
		if outcome.Kind == authority.OutcomeError {
			r.logger.WarnContext(ctx, "registration authority lookup failed",
				"error_ref", detail[DetailKeyErrorRef],
				"error", outcome.Err,
			)
		}
	}

	r.metrics.IncResolution(string(code))

	voter, authenticated := subject.Voter()
	if !authenticated {
		status := r.statuses.NewEphemeral(identity)
		status.Code = code
		status.Detail = detail
		status.CheckedAt = checkedAt
		return status, nil
	}

	updated, err := r.statuses.Upsert(ctx, voter.ID, code, detail, checkedAt)
	if err != nil {
		return domain.RegistrationStatus{}, fmt.Errorf("persist status: %w", err)
	}
	return updated, nil
}
