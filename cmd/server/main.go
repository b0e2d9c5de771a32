package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	store, closeStore := openStore(cfg)
	defer closeStore()

	contactService := service.NewContactService(store)
	communityService := service.NewCommunityService(store)
	feedbackService := service.NewFeedbackService(store)

	router := handler.NewRouter(handler.Routes{
		Base:      handler.New(store, cfg.AllowedOrigins),
		Contacts:  handler.NewContactHandler(contactService),
		Community: handler.NewCommunityHandler(communityService),
		Feedback:  handler.NewFeedbackHandler(feedbackService),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// openStore returns the PostgreSQL store when DATABASE_URL is set and the
// in-memory store otherwise, along with its cleanup function.
func openStore(cfg *config.Config) (repository.Store, func()) {
	if !cfg.UsesDatabase() {
		var opts []repository.MemOption
		if !cfg.SeedCommunity {
			opts = append(opts, repository.WithoutSeed())
		}
		slog.Info("using in-memory store", "seeded", cfg.SeedCommunity)
		return repository.NewMemStore(opts...), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	store := repository.NewPgStore(pool)

	if cfg.SeedCommunity {
		seeded, err := store.SeedIfEmpty(ctx, time.Now(), nil)
		if err != nil {
			pool.Close()
			logging.Fatal("failed to seed community messages", "error", err)
		}
		slog.Info("using postgres store", "seeded", seeded)
	} else {
		slog.Info("using postgres store", "seeded", false)
	}
	return store, pool.Close
}
