package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votercheck/internal/jwttoken"
	"votercheck/internal/platform/middleware"
	"votercheck/pkg/requestcontext"
)

func authChain(t *testing.T, validator middleware.TokenValidator) (http.Handler, *string) {
	t.Helper()
	var seenVoterID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenVoterID = requestcontext.VoterID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return middleware.Auth(validator, logger)(next), &seenVoterID
}

func TestAuth_NoHeaderPassesAnonymously(t *testing.T) {
	sessions := jwttoken.New("test-signing-key-at-least-32-bytes!!", "test", time.Hour)
	chain, seen := authChain(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, *seen)
}

func TestAuth_ValidTokenSetsVoterID(t *testing.T) {
	sessions := jwttoken.New("test-signing-key-at-least-32-bytes!!", "test", time.Hour)
	token, err := sessions.Generate("voter-1", "jane@example.com")
	require.NoError(t, err)

	chain, seen := authChain(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "voter-1", *seen)
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	sessions := jwttoken.New("test-signing-key-at-least-32-bytes!!", "test", time.Hour)
	chain, seen := authChain(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, *seen)
}

func TestAuth_WrongSchemeRejected(t *testing.T) {
	sessions := jwttoken.New("test-signing-key-at-least-32-bytes!!", "test", time.Hour)
	chain, _ := authChain(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
