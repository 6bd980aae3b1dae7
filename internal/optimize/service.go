package optimize

import (
	"context"
	"fmt"
	"math"
	"time"

	"bagusgo_backend/platform/config"
	"bagusgo_backend/platform/logger"

	"googlemaps.github.io/maps"
)

// Service orders delivery addresses into a drivable route via the
// Google Directions API with waypoint optimization.
type Service struct {
	client *maps.Client
	lang   string
	log    *logger.Logger
}

func NewService(cfg config.GeocodeConfig, log *logger.Logger) *Service {
	s := &Service{
		lang: cfg.GetGeocodeLanguage(),
		log:  log,
	}

	if key := cfg.GetMapsAPIKey(); key != "" {
		client, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.Error("failed to initialize directions client", "error", err)
		} else {
			s.client = client
		}
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set, route optimization disabled")
	}

	return s
}

// NewServiceWithClient injects a preconfigured maps client for tests.
func NewServiceWithClient(client *maps.Client, lang string, log *logger.Logger) *Service {
	return &Service{client: client, lang: lang, log: log}
}

// Optimize plans a route from origin through every address. The last
// address is the fixed destination; the rest are waypoints the provider
// is free to reorder. Returned items are in visiting order.
func (s *Service) Optimize(ctx context.Context, origin Origin, addresses []string) ([]Item, error) {
	if s.client == nil {
		return nil, ErrProviderMisconfigured
	}
	if len(addresses) == 0 {
		return nil, ErrNoRoute
	}

	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: addresses[len(addresses)-1],
		Waypoints:   addresses[:len(addresses)-1],
		Optimize:    true,
		Mode:        maps.TravelModeDriving,
		Language:    s.lang,
	}

	routes, _, err := s.client.Directions(ctx, req)
	if err != nil {
		s.log.Error("directions request failed", "stops", len(addresses), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	route := routes[0]
	items := buildItems(addresses, route.WaypointOrder, route.Legs)
	s.log.Info("route optimized", "stops", len(items))
	return items, nil
}

// buildItems maps the provider's waypoint permutation and per-leg
// metrics back onto the caller's addresses. Leg i ends at visiting
// stop i; the final leg always ends at the fixed destination.
func buildItems(addresses []string, waypointOrder []int, legs []*maps.Leg) []Item {
	waypoints := addresses[:len(addresses)-1]
	destination := addresses[len(addresses)-1]

	ordered := make([]string, 0, len(addresses))
	for _, idx := range waypointOrder {
		if idx >= 0 && idx < len(waypoints) {
			ordered = append(ordered, waypoints[idx])
		}
	}
	ordered = append(ordered, destination)

	items := make([]Item, 0, len(ordered))
	for i, addr := range ordered {
		item := Item{Address: addr}
		if i < len(legs) {
			item.DistanceKm = roundKm(legs[i].Distance.Meters)
			item.Duration = formatDuration(legs[i].Duration)
		}
		items = append(items, item)
	}
	return items
}

// roundKm converts leg meters to kilometers at 0.1 km precision, the
// granularity the client renders.
func roundKm(meters int) float64 {
	return math.Round(float64(meters)/100) / 10
}

func formatDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	if mins < 60 {
		if mins == 1 {
			return "1 min"
		}
		return fmt.Sprintf("%d mins", mins)
	}

	hours := mins / 60
	mins = mins % 60
	if mins == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d hours %d mins", hours, mins)
}
