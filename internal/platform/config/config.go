package config

import (
	"os"
	"time"
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr        string
	MetricsAddr string

	// DatabaseURL selects the postgres stores; empty runs in-memory.
	DatabaseURL string

	// RedisURL selects the redis login token store; empty runs in-memory.
	RedisURL string

	// AuthorityURL selects the HTTP authority client; empty runs the
	// deterministic mock.
	AuthorityURL     string
	AuthorityTimeout time.Duration

	JWTSigningKey string
	SessionTTL    time.Duration

	LoginTokenTTL    time.Duration
	LoginLinkBaseURL string
}

// FromEnv builds the config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:             envOr("VOTERCHECK_ADDR", ":8080"),
		MetricsAddr:      envOr("VOTERCHECK_METRICS_ADDR", ":9090"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		AuthorityURL:     os.Getenv("AUTHORITY_URL"),
		AuthorityTimeout: durationOr("AUTHORITY_TIMEOUT", 10*time.Second),
		// Default for development - must be overridden in production
		JWTSigningKey:    envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:       durationOr("SESSION_TTL", 24*time.Hour),
		LoginTokenTTL:    durationOr("LOGIN_TOKEN_TTL", 15*time.Minute),
		LoginLinkBaseURL: envOr("LOGIN_LINK_BASE_URL", "http://localhost:8080/auth/login"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
