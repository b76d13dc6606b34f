package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenfund-demo/config"
	httpHandler "greenfund-demo/internal/adapter/http/handler"
	pgStorage "greenfund-demo/internal/adapter/storage/postgres"
	redisStorage "greenfund-demo/internal/adapter/storage/redis"
	"greenfund-demo/internal/core/ports"
	"greenfund-demo/internal/service"
	"greenfund-demo/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("stats_mode", cfg.Demo.StatsMode).
		Bool("append_on_submit", cfg.Demo.AppendOnSubmit).
		Msg("Starting GreenFund demo")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var healthCheckers []ports.HealthChecker

	// Optional PostgreSQL audit trail
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		repo := pgStorage.NewAuditRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare audit schema")
		}
		auditRepo = repo
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	// Optional Redis rate limiting
	var rateLimiter ports.RateLimiter
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Session tokens
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = randomSecret()
		log.Warn().Msg("jwt.secret not set, using a random secret; tokens will not survive a restart")
	}
	tokenSvc := service.NewJWTTokenService(secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Engines and the session table
	engineFactory, err := service.NewEngineFactory(cfg.Demo, cfg.Stats, service.NewClockScheduler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid demo configuration")
	}
	sessionSvc := service.NewSessionManager(tokenSvc, engineFactory, cfg.Demo.SessionTTL, logger.Component(log, "sessions"))
	go sessionSvc.Run(ctx, cfg.Demo.JanitorInterval)

	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		TokenSvc:       tokenSvc,
		RateLimiter:    rateLimiter,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Closing the engines ends open notification streams.
	sessionSvc.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("reading random secret: %v", err))
	}
	return hex.EncodeToString(b)
}
