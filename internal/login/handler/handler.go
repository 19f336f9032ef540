package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"votercheck/internal/domain"
	dErrors "votercheck/pkg/domain-errors"
	"votercheck/pkg/platform/httputil"
	"votercheck/pkg/requestcontext"
)

// Service defines the login operations the HTTP layer depends on.
type Service interface {
	RequestLink(ctx context.Context, address string) error
	ConsumeToken(ctx context.Context, token string) (string, domain.Voter, error)
}

// Handler wires the passwordless login endpoints to the login service.
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

// Register mounts login endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/email", h.HandleRequestLink)
	r.Get("/auth/login", h.HandleLogin)
}

// HandleRequestLink handles POST /auth/email requests.
func (h *Handler) HandleRequestLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[RequestLinkRequest](w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.RequestLink(ctx, req.Email); err != nil {
		h.logger.WarnContext(ctx, "login link request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, RequestLinkResponse{
		Message: "login link sent",
	})
}

// HandleLogin handles GET /auth/login requests.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "token query parameter is required"))
		return
	}

	session, voter, err := h.service.ConsumeToken(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "login token redemption failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login completed",
		"request_id", requestcontext.RequestID(ctx),
		"voter_id", voter.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, FromLogin(session, voter))
}
