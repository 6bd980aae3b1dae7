package geocode

import (
	"errors"
	"net/http"
	"strconv"

	"bagusgo_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the forward and reverse geocode endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Lookup handles GET /api/geocode?q=...&source=search|scan
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "query 'q' is required (min 3 chars)")
		return
	}

	if req.Source == "scan" {
		// OCR path: never fail, degrade to the raw query.
		httpkit.OK(c, Address{FormattedAddress: h.svc.Normalize(c.Request.Context(), req.Query)})
		return
	}

	addr, err := h.svc.Search(c.Request.Context(), req.Query)
	if err != nil {
		respondGeocodeError(c, err)
		return
	}

	httpkit.OK(c, addr)
}

// ReverseLookup handles GET /api/reverse-geocode?lat=...&lng=...
// Latitude 0 is a legal value here (Indonesia straddles the equator), so
// presence is checked on the raw query strings rather than binding tags.
func (h *Handler) ReverseLookup(c *gin.Context) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "lat and lng are required")
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		httpkit.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "lat and lng must be numbers")
		return
	}

	formatted, err := h.svc.Reverse(c.Request.Context(), Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		respondGeocodeError(c, err)
		return
	}

	httpkit.OK(c, Address{FormattedAddress: formatted, Location: &Coordinate{Lat: lat, Lng: lng}})
}

func respondGeocodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProviderMisconfigured):
		httpkit.Fail(c, http.StatusInternalServerError, "PROVIDER_MISCONFIGURED", "geocoding service not configured")
	case errors.Is(err, ErrNoAddressFound):
		httpkit.Fail(c, http.StatusNotFound, "NO_ADDRESS_FOUND", "no address found for this query")
	default:
		httpkit.Fail(c, http.StatusBadGateway, "UPSTREAM_ERROR", "geocoding service unavailable")
	}
}
