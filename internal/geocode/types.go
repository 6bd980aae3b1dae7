package geocode

import "errors"

// Coordinate is a plain lat/lng pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a resolved, provider-formatted address. Location is nil when the
// lookup path is not coordinate-aware.
type Address struct {
	FormattedAddress string      `json:"formatted_address"`
	Location         *Coordinate `json:"location,omitempty"`
}

var (
	// ErrNoAddressFound means the provider answered with zero results.
	ErrNoAddressFound = errors.New("no address found")
	// ErrProviderUnavailable means the provider could not be reached or errored.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
	// ErrProviderMisconfigured means no API credential is present; no call is made.
	ErrProviderMisconfigured = errors.New("geocoding provider not configured")
)

// LookupRequest represents the forward geocode query parameters.
type LookupRequest struct {
	Query string `form:"q" binding:"required,min=3"`
	// Source distinguishes explicit search ("search", the default) from the
	// OCR path ("scan"). The scan path degrades to the raw query on failure;
	// the search path surfaces errors.
	Source string `form:"source"`
}
