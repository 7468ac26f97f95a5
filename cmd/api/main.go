// Package main is the entry point for the GanhosPro API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ganhospro/backend/internal/ai"
	"github.com/ganhospro/backend/internal/config"
	"github.com/ganhospro/backend/internal/entitlement"
	"github.com/ganhospro/backend/internal/handler"
	"github.com/ganhospro/backend/internal/middleware"
	"github.com/ganhospro/backend/internal/repo"
	"github.com/ganhospro/backend/internal/service"
	"github.com/ganhospro/backend/internal/store"
	"github.com/ganhospro/backend/migrations"
)

// maxRequestBody caps JSON request bodies. The largest legitimate payload
// is the cost calculator body, well under a kilobyte.
const maxRequestBody = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Application state ------------------------------------------------
	// The whole record history lives in memory and is snapshotted to the
	// app_state table after every mutation. Seed it from the last snapshot.
	stateRepo := repo.NewStateRepo(pool)

	records := store.NewRecordStore()
	seed, err := stateRepo.LoadRecords(context.Background())
	if err != nil {
		slog.Error("failed to load persisted records", "error", err)
		os.Exit(1)
	}
	records.Seed(seed)
	slog.Info("record store seeded", "records", records.Len())

	ent := entitlement.NewManager(stateRepo)
	gemini := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	srvHandler := handler.NewServer(
		service.NewRecordService(records, stateRepo, ent),
		service.NewSettingsService(stateRepo, ent),
		service.NewReportService(records, stateRepo),
		service.NewInsightService(records, gemini),
		ent,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → body limit → metrics.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))
	r.Use(middleware.NewMetrics())

	srvHandler.Routes(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending embedded migrations at boot.
// goose drives database/sql, so it gets its own short-lived connection
// rather than the pgx pool.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version)
	}
	return nil
}
