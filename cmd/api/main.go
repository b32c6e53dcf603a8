package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dining-companion/internal/analytics"
	"dining-companion/internal/catalog"
	"dining-companion/internal/config"
	"dining-companion/internal/database"
	"dining-companion/internal/handler"
	"dining-companion/internal/model"
	"dining-companion/internal/repository"
	"dining-companion/internal/router"
	"dining-companion/internal/service"
	"dining-companion/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting dining companion API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalogue (embedded fixture, local file or S3 with local fallback)
	locations, err := catalog.Load(ctx, cfg.Catalog.File, cfg.S3, logger)
	if err != nil {
		return err
	}

	// Initialize catalogue repository
	locationRepo, closeRepo, err := newLocationRepository(ctx, cfg, locations, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Session stores share the catalogue snapshot being served
	snapshot, err := locationRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalogue snapshot: %w", err)
	}
	registry := store.NewRegistry(snapshot, cfg.Session.MaxStores, logger)

	// Initialize analytics client
	analyticsClient, err := analytics.NewClient(
		cfg.Analytics.BackendURL,
		logger,
		analytics.WithTunnelSignatures(cfg.Analytics.TunnelSignatures...),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize analytics client: %w", err)
	}
	logger.Info().Str("backend_url", analyticsClient.Origin()).Msg("analytics client configured")

	// Initialize services
	locationService := service.NewLocationService(locationRepo, logger)
	insightService := service.NewInsightService(analyticsClient, cfg.Analytics.DefaultLimit, logger)

	// Initialize router
	mux := router.New(
		router.Handlers{
			Location: handler.NewLocationHandler(locationService, logger),
			Favorite: handler.NewFavoriteHandler(locationService, logger),
			Insight:  handler.NewInsightHandler(insightService, logger),
		},
		registry,
		router.Options{
			APIKey:        cfg.Auth.APIKey,
			DefaultUserID: cfg.Session.DefaultUserID,
		},
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newLocationRepository returns the PostgreSQL repository when the database is
// enabled, reseeding it from locations when requested, and the in-memory
// repository otherwise. The returned func releases its resources.
func newLocationRepository(ctx context.Context, cfg *config.Config, locations []model.DiningLocation, logger zerolog.Logger) (repository.LocationRepository, func(), error) {
	if !cfg.Database.Enabled {
		logger.Info().Int("locations", len(locations)).Msg("serving catalogue from memory (database disabled)")
		return repository.NewMemoryRepository(locations, logger), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	repo := repository.NewLocationRepository(pool, logger)

	if cfg.Catalog.Seed {
		if err := repo.Replace(ctx, locations); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}

	return repo, pool.Close, nil
}
