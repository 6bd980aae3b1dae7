package optimize

import "errors"

// Origin is the courier's current position, used as the route start.
type Origin struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Request is the optimize-route payload: a start position and the
// unordered list of delivery addresses.
type Request struct {
	Origin       Origin   `json:"origin" binding:"required"`
	Destinations []string `json:"destinations" binding:"required,min=1,dive,min=3"`
}

// Item is one stop of the optimized route. The slice order IS the
// visiting order; clients render it verbatim.
type Item struct {
	Address    string  `json:"address"`
	DistanceKm float64 `json:"distance_km"`
	Duration   string  `json:"duration"`
}

var (
	// ErrNoRoute is returned when the directions provider finds no
	// drivable route through the given addresses.
	ErrNoRoute = errors.New("no route found")

	// ErrProviderMisconfigured mirrors the geocode module: the API key
	// is absent so the optimizer cannot run.
	ErrProviderMisconfigured = errors.New("route provider not configured")

	// ErrProviderUnavailable wraps transport or quota failures from the
	// directions provider.
	ErrProviderUnavailable = errors.New("route provider unavailable")
)
