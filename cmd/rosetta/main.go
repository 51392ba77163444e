package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/rosetta/internal/api/rest"
	"github.com/fortuna/rosetta/internal/config"
	"github.com/fortuna/rosetta/internal/store"
	"github.com/fortuna/rosetta/internal/store/memstore"
	"github.com/fortuna/rosetta/internal/store/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.AppEnv).
		Str("backend", cfg.StoreBackend).
		Msg("Starting rosetta - entity resolution service")

	catalog, err := openCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog store")
	}
	defer catalog.Close()

	log.Info().Msg("Catalog store ready")

	restServer := rest.NewServer(cfg.Port, catalog, cfg.EnableMetrics)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("REST API server listening")
		if err := restServer.Start(); err != nil {
			log.Error().Err(err).Msg("REST server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down rosetta gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("REST API server shutdown error")
	}

	log.Info().Msg("rosetta stopped")
}

// openCatalog selects the catalog backend: the in-memory reference dataset,
// or a persistent SQL store with optional schema migration and seeding.
func openCatalog(cfg *config.Config) (store.Catalog, error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Warn().Msg("Using in-memory catalog - persistent store not configured")
		return memstore.New(), nil
	}

	db, err := store.NewDatabase(cfg.StoreBackend, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.MigrationsDir); err != nil {
			db.Close()
			return nil, err
		}
	}

	// Seeding is dev bootstrap only; overlap with loader-owned rows is
	// non-fatal.
	if cfg.SeedOnStart {
		if err := db.SeedData(cfg.SeedDir); err != nil {
			log.Warn().Err(err).Msg("Seed data warning, continuing anyway")
		}
	}

	return repository.NewCatalog(db), nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg *config.Config) {
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
}
