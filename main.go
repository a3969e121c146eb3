package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/feedbackhub/feedback-backend/config"
	"github.com/feedbackhub/feedback-backend/db"
	"github.com/feedbackhub/feedback-backend/handlers"
	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/internal/store/memory"
	"github.com/feedbackhub/feedback-backend/internal/store/postgres"
	"github.com/feedbackhub/feedback-backend/logger"
	"github.com/feedbackhub/feedback-backend/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataStore, cleanup := selectStore(ctx, cfg)
	defer cleanup()

	feedbackHandler := handlers.NewFeedbackHandler(dataStore)
	authHandler := handlers.NewAuthHandler(dataStore, cfg.Server.JwtSecretKey)
	healthHandler := handlers.NewHealthHandler(dataStore.Mode(), cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		FeedbackHandler: feedbackHandler,
		AuthHandler:     authHandler,
		HealthHandler:   healthHandler,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Server starting", "port", cfg.Server.Port, "storage", dataStore.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
}

// selectStore attempts to reach PostgreSQL and falls back to the in-memory
// store when it cannot. The fallback trades durability for availability:
// anything submitted while degraded is lost on restart.
func selectStore(ctx context.Context, cfg *config.Config) (store.Store, func()) {
	log := logger.GetLogger()

	pool, err := db.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Warnw("Database unreachable, falling back to in-memory storage; data will not survive a restart",
			"error", err,
			"database", logger.MaskConnectionString(cfg.Database.URL()),
		)
		return memory.New(), func() {}
	}

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Warnw("Migrations failed, falling back to in-memory storage", "error", err)
		pool.Close()
		return memory.New(), func() {}
	}

	return postgres.New(pool), pool.Close
}
