package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-agency/internal/adapters/lookup/randompet"
	mem "pet-adoption-agency/internal/adapters/storage/memory"
	pg "pet-adoption-agency/internal/adapters/storage/postgres"
	"pet-adoption-agency/internal/adapters/storage/sqlite"
	"pet-adoption-agency/internal/config"
	"pet-adoption-agency/internal/domain/pets"
	"pet-adoption-agency/internal/platform/logger"
	"pet-adoption-agency/internal/ports/lookup"
	"pet-adoption-agency/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", logger.Fields{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := context.Background()

	petRepo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("opening pet store", logger.Fields{"driver": cfg.StoreDriver, "error": err})
		os.Exit(1)
	}
	defer closeStore()

	var finder lookup.RandomPetLookup
	if cfg.EnrichmentEnabled {
		client, err := randompet.NewClient(randompet.Config{
			BaseURL:  cfg.PetfinderBaseURL,
			APIKey:   cfg.PetfinderAPIKey,
			Timeout:  cfg.PetfinderTimeout,
			CacheTTL: cfg.PetfinderCacheTTL,
		})
		if err != nil {
			log.Error("configuring random pet lookup", logger.Fields{"error": err})
			os.Exit(1)
		}
		finder = client
	}

	handler, err := router.NewRouter(router.Options{
		PetRepo:         petRepo,
		Lookup:          finder,
		LookupTimeout:   cfg.PetfinderTimeout,
		Logger:          log,
		DefaultPhotoURL: cfg.DefaultPhotoURL,
	})
	if err != nil {
		log.Error("building router", logger.Fields{"error": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{
			"port":       cfg.Port,
			"store":      cfg.StoreDriver,
			"enrichment": cfg.EnrichmentEnabled,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down server", logger.Fields{"signal": sig.String()})
	case err := <-serverErr:
		log.Error("server error", logger.Fields{"error": err})
		closeStore()
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", logger.Fields{"error": err})
	}
	log.Info("server stopped", nil)
}

// openStore construye el repositorio según STORE_DRIVER y crea la tabla si hace falta.
func openStore(ctx context.Context, cfg *config.Config) (pets.Repository, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewPetsRepo(db), func() { _ = db.Close() }, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewPetsRepo(db), func() { _ = sqlDB.Close() }, nil

	default:
		return mem.NewPetRepo(), func() {}, nil
	}
}
