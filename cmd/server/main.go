package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/config"
	"github.com/readylabs/aiready-backend/internal/database"
	"github.com/readylabs/aiready-backend/internal/export"
	"github.com/readylabs/aiready-backend/internal/handler"
	"github.com/readylabs/aiready-backend/internal/logger"
	"github.com/readylabs/aiready-backend/internal/router"
	"github.com/readylabs/aiready-backend/internal/service"
	"github.com/readylabs/aiready-backend/internal/store"
	"github.com/readylabs/aiready-backend/internal/validator"
	"github.com/readylabs/aiready-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store", cfg.StoreDriver).
		Msg("Starting AI-readiness assessment backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Load Question Catalog ─────────────────────────────────────────
	cat := catalog.Default()
	if cfg.QuestionsFile != "" {
		loaded, err := catalog.LoadFile(cfg.QuestionsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.QuestionsFile).Msg("Failed to load question catalog")
		}
		cat = loaded
	}
	log.Info().Int("questions", cat.Len()).Msg("Question catalog loaded")

	// ─── Initialize Session Store ──────────────────────────────────────
	var st store.Store
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		st = store.NewPostgres(pool, cfg.DefaultTimeLimit)
	case "memory":
		// Process-lifetime state only; every restart starts empty.
		st = store.NewMemory(cfg.DefaultTimeLimit)
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("Unknown store driver")
	}

	// Optional Redis read-through cache in front of the store.
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		st = store.NewCached(st, rdb, cfg.SessionTTL, log)
	}

	// ─── Initialize Services ──────────────────────────────────────────
	sessionService := service.NewSessionService(st, cat, cfg.AutoSubmitOnExpiry, log)
	defer sessionService.Close()

	exporter := export.NewPDFExporter(cfg.PDFFontPath, log)
	if !exporter.Available() {
		log.Warn().Str("font", cfg.PDFFontPath).Msg("PDF font missing, export falls back to descriptor")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Question: handler.NewQuestionHandler(cat),
		Session:  handler.NewSessionHandler(sessionService),
		Result:   handler.NewResultHandler(sessionService, cat, exporter),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	sweeper := worker.NewSweeper(st, cfg.SessionTTL, cfg.SweepInterval, log)
	sweeper.OnDelete(sessionService.ReleaseCountdown)
	go sweeper.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
