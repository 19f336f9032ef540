package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"votercheck/internal/jwttoken"
	"votercheck/pkg/requestcontext"
)

// TokenValidator validates session tokens. Satisfied by jwttoken.Service.
type TokenValidator interface {
	Validate(tokenString string) (*jwttoken.Claims, error)
}

// Auth reads an optional Bearer token and, when valid, stores the voter id in
// the context. Requests without a token pass through anonymously; an invalid
// token is rejected so clients never act on a silently expired session.
func Auth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				writeUnauthorized(w, "Authorization header must use the Bearer scheme")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid session token",
					"request_id", requestcontext.RequestID(r.Context()),
					"error", err,
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := requestcontext.WithVoterID(r.Context(), claims.VoterID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
