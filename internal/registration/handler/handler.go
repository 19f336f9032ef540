package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"votercheck/internal/domain"
	"votercheck/internal/registration"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/platform/httputil"
	"votercheck/pkg/platform/sentinel"
	"votercheck/pkg/requestcontext"
)

// Resolver defines the status resolution operation the HTTP layer depends on.
type Resolver interface {
	Resolve(ctx context.Context, subject registration.Subject, forceRefresh bool) (domain.RegistrationStatus, error)
}

// Voters loads voter profiles for authenticated resolution.
type Voters interface {
	FindByID(ctx context.Context, id string) (domain.Voter, error)
}

// Handler wires registration status endpoints to the resolver.
type Handler struct {
	resolver Resolver
	voters   Voters
	statuses registration.StatusStore
	logger   *slog.Logger
}

func New(resolver Resolver, voters Voters, statuses registration.StatusStore, logger *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		voters:   voters,
		statuses: statuses,
		logger:   logger,
	}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/registration", h.HandleResolve)
	r.Get("/registration/statuses/{id}", h.HandleStatus)
}

// HandleResolve handles GET /registration requests. Authenticated requests
// resolve against the stored profile; anonymous requests carry the identity
// in query parameters and are always resolved fresh.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	force := refreshRequested(r)

	subject, err := h.subjectFor(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	status, err := h.resolver.Resolve(ctx, subject, force)
	if err != nil {
		h.logger.ErrorContext(ctx, "status resolution failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromStatus(status))
}

// HandleStatus handles GET /registration/statuses/{id} requests. With
// ?refresh=true the owning voter's status is refreshed before the record is
// returned.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	statusID := chi.URLParam(r, "id")

	status, err := h.statuses.GetByID(ctx, statusID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "status record not found"))
			return
		}
		h.logger.ErrorContext(ctx, "status record load failed",
			"request_id", requestcontext.RequestID(ctx),
			"status_id", statusID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if refreshRequested(r) {
		owner, err := h.voters.FindByID(ctx, status.VoterID)
		if err != nil {
			h.logger.ErrorContext(ctx, "status owner load failed",
				"request_id", requestcontext.RequestID(ctx),
				"status_id", statusID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}

		status, err = h.resolver.Resolve(ctx, registration.ForVoter(owner), true)
		if err != nil {
			h.logger.ErrorContext(ctx, "status refresh failed",
				"request_id", requestcontext.RequestID(ctx),
				"status_id", statusID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
	}

	httputil.WriteJSON(w, http.StatusOK, FromStatus(status))
}

// subjectFor builds the resolution subject: the authenticated voter when a
// session is present, otherwise the identity given in query parameters.
func (h *Handler) subjectFor(r *http.Request) (registration.Subject, error) {
	ctx := r.Context()

	if voterID := requestcontext.VoterID(ctx); voterID != "" {
		voter, err := h.voters.FindByID(ctx, voterID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return registration.Subject{}, dErrors.New(dErrors.CodeUnauthorized, "unknown voter")
			}
			return registration.Subject{}, err
		}
		return registration.ForVoter(voter), nil
	}

	identity, err := identityFromQuery(r.URL.Query())
	if err != nil {
		return registration.Subject{}, err
	}
	return registration.ForIdentity(identity), nil
}

func refreshRequested(r *http.Request) bool {
	switch r.URL.Query().Get("refresh") {
	case "true", "1":
		return true
	}
	return false
}
