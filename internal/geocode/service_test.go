package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bagusgo_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"
)

const okGeocodeResponse = `{
	"status": "OK",
	"results": [
		{
			"formatted_address": "Jl. Jend. Sudirman No.1, Jakarta Pusat, Indonesia",
			"geometry": {"location": {"lat": -6.2088, "lng": 106.8456}}
		},
		{
			"formatted_address": "Jl. Jend. Sudirman No.2, Jakarta Pusat, Indonesia",
			"geometry": {"location": {"lat": -6.2089, "lng": 106.8457}}
		}
	]
}`

const zeroResultsResponse = `{"status": "ZERO_RESULTS", "results": []}`

func newTestService(t *testing.T, handler http.HandlerFunc, cache *Cache) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("maps client: %v", err)
	}

	return NewServiceWithClient(client, "id", "id", cache, logger.New("development")), srv
}

func TestSearchReturnsFirstResultWithCoordinates(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okGeocodeResponse))
	}, nil)

	addr, err := svc.Search(context.Background(), "jl sudirman no 1")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if addr.FormattedAddress != "Jl. Jend. Sudirman No.1, Jakarta Pusat, Indonesia" {
		t.Fatalf("expected first result's formatted address, got %q", addr.FormattedAddress)
	}
	if addr.Location == nil || addr.Location.Lat != -6.2088 || addr.Location.Lng != 106.8456 {
		t.Fatalf("expected first result's coordinates, got %+v", addr.Location)
	}
}

func TestSearchZeroResultsFails(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(zeroResultsResponse))
	}, nil)

	_, err := svc.Search(context.Background(), "alamat yang tidak ada")
	if err != ErrNoAddressFound {
		t.Fatalf("expected ErrNoAddressFound, got %v", err)
	}
}

func TestSearchWithoutCredentialShortCircuits(t *testing.T) {
	svc := NewServiceWithClient(nil, "id", "id", nil, logger.New("development"))

	_, err := svc.Search(context.Background(), "jl sudirman")
	if err != ErrProviderMisconfigured {
		t.Fatalf("expected ErrProviderMisconfigured, got %v", err)
	}
}

func TestNormalizeZeroResultsReturnsRawQuery(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(zeroResultsResponse))
	}, nil)

	const raw = "Jl. Buntu No. 99, RT 03 RW 05"
	if got := svc.Normalize(context.Background(), raw); got != raw {
		t.Fatalf("expected raw query back, got %q", got)
	}
}

func TestNormalizeProviderFailureReturnsRawQuery(t *testing.T) {
	svc, srv := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)
	srv.Close()

	const raw = "teks ocr mentah"
	if got := svc.Normalize(context.Background(), raw); got != raw {
		t.Fatalf("expected raw query back on provider failure, got %q", got)
	}
}

func TestNormalizeSuccessReturnsFormattedAddress(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okGeocodeResponse))
	}, nil)

	got := svc.Normalize(context.Background(), "jl sudirman no 1")
	if got != "Jl. Jend. Sudirman No.1, Jakarta Pusat, Indonesia" {
		t.Fatalf("expected formatted address, got %q", got)
	}
}

func TestReverseReturnsFirstFormattedAddress(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okGeocodeResponse))
	}, nil)

	formatted, err := svc.Reverse(context.Background(), Coordinate{Lat: -6.2088, Lng: 106.8456})
	if err != nil {
		t.Fatalf("reverse failed: %v", err)
	}
	if formatted != "Jl. Jend. Sudirman No.1, Jakarta Pusat, Indonesia" {
		t.Fatalf("unexpected formatted address %q", formatted)
	}
}

func TestReverseZeroResultsFails(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(zeroResultsResponse))
	}, nil)

	_, err := svc.Reverse(context.Background(), Coordinate{Lat: 0, Lng: 0})
	if err != ErrNoAddressFound {
		t.Fatalf("expected ErrNoAddressFound, got %v", err)
	}
}

func TestSearchUsesCacheOnRepeatQuery(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCacheWithClient(rdb, time.Hour)

	calls := 0
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okGeocodeResponse))
	}, cache)

	for i := 0; i < 3; i++ {
		addr, err := svc.Search(context.Background(), "jl sudirman no 1")
		if err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
		if addr.FormattedAddress == "" {
			t.Fatalf("search %d returned empty address", i)
		}
	}

	if calls != 1 {
		t.Fatalf("expected provider to be hit once, got %d calls", calls)
	}
}
