package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amritha-heritage/internal/catalog"
	"amritha-heritage/internal/config"
	"amritha-heritage/internal/database"
	"amritha-heritage/internal/handler"
	"amritha-heritage/internal/idempotency"
	"amritha-heritage/internal/repository"
	"amritha-heritage/internal/router"
	"amritha-heritage/internal/service"

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
	logger.Info().Str("environment", cfg.Environment).Msg("starting amritha-heritage API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalog: S3 with local fallback, built-in content when unset
	content := catalog.LoadOrDefault(ctx, newCatalogLoader(ctx, cfg, logger), cfg.Catalog.File, logger)

	// Initialize the reservation ledger
	var reservationRepo repository.ReservationRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := repository.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		reservationRepo = repository.NewReservationRepository(pool, logger)
	} else {
		logger.Info().Msg("keeping reservations in memory (database disabled)")
		reservationRepo = repository.NewMemoryReservationRepository(logger)
	}

	// Idempotency keys with periodic cleanup
	idemStore := idempotency.NewMemoryStore()
	go idempotency.Sweep(ctx, idemStore, cfg.Idempotency.SweepInterval, idempotency.DefaultSweepBatch, logger)

	// Hero carousels rotate for the lifetime of the server
	heroRegistry, err := service.NewHeroRegistry(content, map[string]time.Duration{
		catalog.PageHome:          cfg.Hero.HomeInterval,
		catalog.PageAccommodation: cfg.Hero.AccommodationInterval,
	}, cfg.Hero.HomeInterval, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize hero carousels: %w", err)
	}
	heroRegistry.StartAll(ctx)
	defer heroRegistry.StopAll()

	// Initialize services
	catalogService := service.NewCatalogService(content, logger)
	heroService := service.NewHeroService(content, heroRegistry, logger)
	reservationService := service.NewReservationService(
		content,
		reservationRepo,
		idemStore,
		service.NewLogNotifier(logger),
		cfg.Idempotency.TTL,
		logger,
	)

	// Initialize router
	mux := router.New(router.Handlers{
		Catalog:     handler.NewCatalogHandler(catalogService, logger),
		Hero:        handler.NewHeroHandler(heroService, logger),
		Reservation: handler.NewReservationHandler(reservationService, logger),
	}, cfg.Auth.APIKey, logger)

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

// newCatalogLoader prefers S3 when enabled and falls back to the local file
// system.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}
	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
