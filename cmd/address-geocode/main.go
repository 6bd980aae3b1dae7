// Command address-geocode backfills coordinates for saved addresses
// that were stored before geocoding ran (or while the provider was
// down). Safe to re-run; it only touches rows missing lat or lng.
package main

import (
	"context"
	"errors"
	"sync/atomic"

	"bagusgo_backend/internal/addresses/repository"
	"bagusgo_backend/internal/geocode"
	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/db"
	"bagusgo_backend/platform/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	batchSize      = 25
	maxConcurrency = 4
	requestsPerSec = 5
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting saved address coordinate backfill")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	cache, err := geocode.NewCache(cfg.GetRedisURL(), cfg.GetGeocodeCacheTTL())
	if err != nil {
		log.Warn("geocode cache unavailable, continuing without it", "error", err)
	}
	if cache != nil {
		defer cache.Close()
	}

	geocoder := geocode.NewService(cfg, cache, log)
	repo := repository.New(pool)

	// The provider has its own quota; keep well under it.
	limiter := rate.NewLimiter(rate.Limit(requestsPerSec), 1)

	var resolved, failed atomic.Int64

	for {
		batch, err := repo.ListMissingCoordinates(ctx, batchSize)
		if err != nil {
			log.Error("failed to list addresses", "error", err)
			return
		}
		if len(batch) == 0 {
			log.Info("backfill complete", "resolved", resolved.Load(), "failed", failed.Load())
			return
		}

		before := resolved.Load()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrency)
		for _, addr := range batch {
			g.Go(func() error {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}

				result, err := geocoder.Search(gctx, addr.Address)
				if err != nil {
					if errors.Is(err, geocode.ErrProviderMisconfigured) {
						return err
					}
					log.Warn("geocode failed", "address_id", addr.ID, "error", err)
					failed.Add(1)
					return nil
				}
				if result.Location == nil {
					failed.Add(1)
					return nil
				}

				if err := repo.SetCoordinates(gctx, addr.ID, result.Location.Lat, result.Location.Lng); err != nil {
					log.Error("failed to store coordinates", "address_id", addr.ID, "error", err)
					failed.Add(1)
					return nil
				}

				log.Info("address geocoded", "address_id", addr.ID, "lat", result.Location.Lat, "lng", result.Location.Lng)
				resolved.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Error("backfill aborted", "error", err)
			return
		}

		if resolved.Load() == before {
			// Everything left in the table is unresolvable; avoid
			// hammering the provider with the same batch forever.
			log.Info("no progress in batch, stopping", "remaining_failures", failed.Load())
			return
		}
	}
}
