package middleware

import (
	"net/http"
	"time"

	"votercheck/pkg/requestcontext"
)

// RequestTime pins the request's wall-clock time in the context. Everything
// downstream reads time through requestcontext.Now so a request observes one
// consistent timestamp.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
