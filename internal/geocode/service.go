package geocode

import (
	"context"
	"fmt"

	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"

	"googlemaps.github.io/maps"
)

// Service resolves free-text queries and coordinates against the Google
// Geocoding API. The provider's own ranking is trusted: the first result wins,
// no client-side re-ranking.
type Service struct {
	client *maps.Client
	cache  *Cache
	lang   string
	region string
	log    *logger.Logger
}

// NewService builds the resolver from config. A missing API key does not fail
// startup; calls short-circuit with ErrProviderMisconfigured instead.
func NewService(cfg config.GeocodeConfig, cache *Cache, log *logger.Logger) *Service {
	s := &Service{
		cache:  cache,
		lang:   cfg.GetGeocodeLanguage(),
		region: cfg.GetGeocodeRegion(),
		log:    log,
	}

	if key := cfg.GetMapsAPIKey(); key != "" {
		client, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Error("failed to initialize maps client", "error", err)
		} else {
			s.client = client
		}
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set, geocoding disabled")
	}

	return s
}

// NewServiceWithClient injects a preconfigured maps client. Used by tests and
// the address-geocode backfill tool.
func NewServiceWithClient(client *maps.Client, lang, region string, cache *Cache, log *logger.Logger) *Service {
	return &Service{client: client, cache: cache, lang: lang, region: region, log: log}
}

// Search forward-geocodes a query and returns the first result. Zero results
// and transport failures are errors; this is the explicit-search contract.
func (s *Service) Search(ctx context.Context, query string) (Address, error) {
	if s.client == nil {
		return Address{}, ErrProviderMisconfigured
	}

	cacheKey := forwardCacheKey(s.lang, query)
	if addr, ok := s.cache.Get(ctx, cacheKey); ok {
		s.log.GeocodeEvent("forward_cached", query, true)
		return addr, nil
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  query,
		Language: s.lang,
		Region:   s.region,
	})
	if err != nil {
		s.log.Error("forward geocode failed", "query", query, "error", err)
		return Address{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if len(results) == 0 {
		s.log.GeocodeEvent("forward", query, false)
		return Address{}, ErrNoAddressFound
	}

	first := results[0]
	addr := Address{
		FormattedAddress: first.FormattedAddress,
		Location: &Coordinate{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
	}

	s.cache.Set(ctx, cacheKey, addr)
	s.log.GeocodeEvent("forward", query, true)
	return addr, nil
}

// Normalize is the OCR-path variant of Search: on any failure it returns the
// original query unchanged. A blurry photo should never block the user; they
// can still see and edit the raw text. Explicit searches must NOT use this.
func (s *Service) Normalize(ctx context.Context, query string) string {
	addr, err := s.Search(ctx, query)
	if err != nil {
		s.log.Debug("geocode fallback to raw query", "query", query, "reason", err.Error())
		return query
	}
	return addr.FormattedAddress
}

// Reverse resolves a coordinate to the nearest formatted address. Each call is
// independent; callers dragging a map pin are responsible for discarding stale
// responses (latest call wins at the call site).
func (s *Service) Reverse(ctx context.Context, coord Coordinate) (string, error) {
	if s.client == nil {
		return "", ErrProviderMisconfigured
	}

	cacheKey := reverseCacheKey(s.lang, coord)
	if addr, ok := s.cache.Get(ctx, cacheKey); ok {
		return addr.FormattedAddress, nil
	}

	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coord.Lat, Lng: coord.Lng},
		Language: s.lang,
	})
	if err != nil {
		s.log.Error("reverse geocode failed", "lat", coord.Lat, "lng", coord.Lng, "error", err)
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if len(results) == 0 {
		return "", ErrNoAddressFound
	}

	formatted := results[0].FormattedAddress
	s.cache.Set(ctx, cacheKey, Address{FormattedAddress: formatted, Location: &coord})
	return formatted, nil
}

func forwardCacheKey(lang, query string) string {
	return fmt.Sprintf("geocode:fwd:%s:%s", lang, query)
}

func reverseCacheKey(lang string, coord Coordinate) string {
	return fmt.Sprintf("geocode:rev:%s:%.6f,%.6f", lang, coord.Lat, coord.Lng)
}
