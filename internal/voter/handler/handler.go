package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"votercheck/internal/domain"
	"votercheck/internal/voter"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/platform/httputil"
	"votercheck/pkg/requestcontext"
)

// Service defines the voter operations the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, req voter.CreateRequest) (domain.Voter, error)
	Get(ctx context.Context, id string) (domain.Voter, error)
}

// Handler wires voter profile endpoints to the voter service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts voter endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/voters", h.HandleCreate)
	r.Get("/voters/me", h.HandleMe)
}

// HandleCreate handles POST /voters requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[CreateVoterRequest](w, r, h.logger)
	if !ok {
		return
	}

	createReq, err := req.ToCreateRequest()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	created, err := h.service.Create(ctx, createReq)
	if err != nil {
		h.logger.ErrorContext(ctx, "voter creation failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "voter created",
		"request_id", requestcontext.RequestID(ctx),
		"voter_id", created.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromVoter(created))
}

// HandleMe handles GET /voters/me requests.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	voterID := requestcontext.VoterID(ctx)
	if voterID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	found, err := h.service.Get(ctx, voterID)
	if err != nil {
		h.logger.ErrorContext(ctx, "voter lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"voter_id", voterID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromVoter(found))
}
