// Package httptransport assembles the HTTP router from the per-module
// handlers. Transport concerns only; business logic stays in the services.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	loginhandler "votercheck/internal/login/handler"
	"votercheck/internal/platform/middleware"
	registrationhandler "votercheck/internal/registration/handler"
	voterhandler "votercheck/internal/voter/handler"
)

// Handlers bundles the per-module handlers the router mounts.
type Handlers struct {
	Voter        *voterhandler.Handler
	Login        *loginhandler.Handler
	Registration *registrationhandler.Handler
}

// NewRouter wires all public endpoints behind the shared middleware chain.
// Authentication is optional at this layer; handlers that need a voter check
// the context themselves.
func NewRouter(h Handlers, validator middleware.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Auth(validator, logger))

	r.Get("/healthz", handleHealth)

	h.Voter.Register(r)
	h.Login.Register(r)
	h.Registration.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
