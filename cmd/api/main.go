package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bagusgo_backend/internal/addresses"
	"bagusgo_backend/internal/auth"
	"bagusgo_backend/internal/geocode"
	apphttp "bagusgo_backend/internal/http"
	"bagusgo_backend/internal/http/router"
	"bagusgo_backend/internal/optimize"
	"bagusgo_backend/internal/scan"
	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/db"
	"bagusgo_backend/platform/logger"
	"bagusgo_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Geocode result cache, optional. Lookups go straight to the provider
	// when Redis is absent.
	geocodeCache, err := geocode.NewCache(cfg.GetRedisURL(), cfg.GetGeocodeCacheTTL())
	if err != nil {
		log.Warn("geocode cache unavailable, continuing without it", "error", err)
	}
	if geocodeCache != nil {
		defer geocodeCache.Close()
		log.Info("geocode cache connected")
	}

	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, val, log)
	addressesModule := addresses.NewModule(pool, val, log)

	geocodeService := geocode.NewService(cfg, geocodeCache, log)
	geocodeModule := geocode.NewModule(geocodeService)

	scanModule, err := scan.NewModule(cfg, geocodeService, log)
	if err != nil {
		log.Error("failed to initialize scan module", "error", err)
		panic("failed to initialize scan module: " + err.Error())
	}
	if storage := scanModule.Storage(); storage != nil {
		if err := withRetry(ctx, log, "ensure scan photo bucket", 5, 2*time.Second, func() error {
			return storage.EnsureBucket(ctx)
		}); err != nil {
			log.Error("failed to ensure scan photo bucket", "error", err)
			panic("failed to ensure scan photo bucket: " + err.Error())
		}
		log.Info("scan photo storage initialized", "bucket", cfg.GetScanBucket())
	}

	optimizeService := optimize.NewService(cfg, log)
	optimizeModule := optimize.NewModule(optimizeService, authModule.Service())

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			addressesModule,
			geocodeModule,
			scanModule,
			optimizeModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
