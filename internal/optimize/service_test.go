package optimize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bagusgo_backend/platform/logger"

	"googlemaps.github.io/maps"
)

// Three addresses, provider reorders the two waypoints (visits the
// second one first) and keeps the last address as fixed destination.
const reorderedRouteResponse = `{
	"status": "OK",
	"geocoded_waypoints": [],
	"routes": [
		{
			"waypoint_order": [1, 0],
			"legs": [
				{"distance": {"text": "2.4 km", "value": 2400}, "duration": {"text": "9 mins", "value": 540}},
				{"distance": {"text": "1.1 km", "value": 1100}, "duration": {"text": "5 mins", "value": 300}},
				{"distance": {"text": "4.8 km", "value": 4800}, "duration": {"text": "15 mins", "value": 900}}
			]
		}
	]
}`

const noRouteResponse = `{"status": "ZERO_RESULTS", "geocoded_waypoints": [], "routes": []}`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("maps client: %v", err)
	}

	return NewServiceWithClient(client, "id", logger.New("development"))
}

func TestOptimizeFollowsProviderWaypointOrder(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reorderedRouteResponse))
	})

	addresses := []string{
		"Jl. Sudirman No. 1, Jakarta",
		"Jl. Thamrin No. 2, Jakarta",
		"Jl. Gatot Subroto No. 12, Jakarta",
	}

	items, err := svc.Optimize(context.Background(), Origin{Lat: -6.2, Lng: 106.8}, addresses)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(items))
	}

	// waypoint_order [1,0] means Thamrin first, then Sudirman, then the
	// fixed destination.
	want := []string{
		"Jl. Thamrin No. 2, Jakarta",
		"Jl. Sudirman No. 1, Jakarta",
		"Jl. Gatot Subroto No. 12, Jakarta",
	}
	for i, w := range want {
		if items[i].Address != w {
			t.Fatalf("stop %d: expected %q, got %q", i, w, items[i].Address)
		}
	}

	if items[0].DistanceKm != 2.4 || items[0].Duration != "9 mins" {
		t.Fatalf("unexpected first leg metrics: %+v", items[0])
	}
	if items[2].DistanceKm != 4.8 || items[2].Duration != "15 mins" {
		t.Fatalf("unexpected final leg metrics: %+v", items[2])
	}
}

func TestOptimizeNoRouteFails(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(noRouteResponse))
	})

	_, err := svc.Optimize(context.Background(), Origin{Lat: -6.2, Lng: 106.8}, []string{"Jl. Sudirman No. 1"})
	if err != ErrNoRoute {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
}

func TestOptimizeWithoutCredentialShortCircuits(t *testing.T) {
	svc := NewServiceWithClient(nil, "id", logger.New("development"))

	_, err := svc.Optimize(context.Background(), Origin{}, []string{"Jl. Sudirman No. 1"})
	if err != ErrProviderMisconfigured {
		t.Fatalf("expected ErrProviderMisconfigured, got %v", err)
	}
}

func TestBuildItemsSingleAddress(t *testing.T) {
	legs := []*maps.Leg{
		{Distance: maps.Distance{Meters: 3200}, Duration: 11 * time.Minute},
	}

	items := buildItems([]string{"Jl. Braga No. 10, Bandung"}, nil, legs)
	if len(items) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(items))
	}
	if items[0].Address != "Jl. Braga No. 10, Bandung" {
		t.Fatalf("unexpected address: %q", items[0].Address)
	}
	if items[0].DistanceKm != 3.2 || items[0].Duration != "11 mins" {
		t.Fatalf("unexpected metrics: %+v", items[0])
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "1 min"},
		{time.Minute, "1 min"},
		{9 * time.Minute, "9 mins"},
		{time.Hour, "1 hour"},
		{65 * time.Minute, "1 hour 5 mins"},
		{2 * time.Hour, "2 hours"},
		{150 * time.Minute, "2 hours 30 mins"},
	}

	for _, tc := range cases {
		if got := formatDuration(tc.in); got != tc.want {
			t.Fatalf("formatDuration(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
