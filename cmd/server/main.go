// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"votercheck/internal/jwttoken"
	"votercheck/internal/login"
	loginhandler "votercheck/internal/login/handler"
	"votercheck/internal/platform/config"
	"votercheck/internal/platform/httpserver"
	"votercheck/internal/platform/logger"
	"votercheck/internal/platform/metrics"
	platformredis "votercheck/internal/platform/redis"
	"votercheck/internal/registration"
	"votercheck/internal/registration/authority"
	registrationhandler "votercheck/internal/registration/handler"
	registrationmetrics "votercheck/internal/registration/metrics"
	"votercheck/internal/registration/store"
	httptransport "votercheck/internal/transport/http"
	"votercheck/internal/voter"
	voterhandler "votercheck/internal/voter/handler"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	// Stores: postgres when a database is configured, in-memory otherwise.
	var (
		voterStore  voter.Store
		statusStore registration.StatusStore
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return err
		}
		voterStore = voter.NewPostgresStore(db)
		statusStore = store.NewPostgresStatusStore(db)
		log.Info("using postgres stores")
	} else {
		voterStore = voter.NewMemoryStore()
		statusStore = store.NewMemoryStatusStore()
		log.Info("using in-memory stores")
	}

	// Login tokens: redis when configured, in-memory otherwise.
	var tokenStore login.TokenStore
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		tokenStore = login.NewRedisTokenStore(redisClient.Client)
		log.Info("using redis login token store")
	} else {
		tokenStore = login.NewMemoryTokenStore()
		log.Info("using in-memory login token store")
	}

	// Authority: real HTTP client when configured, deterministic mock otherwise.
	var authorityClient authority.Client
	if cfg.AuthorityURL != "" {
		authorityClient = authority.NewHTTPClient(cfg.AuthorityURL, cfg.AuthorityTimeout)
		log.Info("using HTTP registration authority", "url", cfg.AuthorityURL)
	} else {
		authorityClient = authority.NewMockClient()
		log.Info("using mock registration authority")
	}

	appMetrics := metrics.New()
	sessions := jwttoken.New(cfg.JWTSigningKey, "votercheck", cfg.SessionTTL)

	resolver := registration.NewResolver(authorityClient, statusStore, log, registrationmetrics.New())
	loginService := login.NewService(voterStore, tokenStore, login.NewLogSender(log), sessions,
		log, appMetrics, cfg.LoginTokenTTL, cfg.LoginLinkBaseURL)
	voterService := voter.NewService(voterStore, statusStore, loginService, log, appMetrics)

	router := httptransport.NewRouter(httptransport.Handlers{
		Voter:        voterhandler.New(voterService, log),
		Login:        loginhandler.New(loginService, log),
		Registration: registrationhandler.New(resolver, voterStore, statusStore, log),
	}, sessions, log)

	apiServer := httpserver.New(cfg.Addr, router)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := httpserver.New(cfg.MetricsAddr, metricsMux)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting votercheck", "addr", cfg.Addr)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("serving metrics", "addr", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return metricsServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
