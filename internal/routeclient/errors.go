package routeclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the session token was rejected. The client
	// clears its session before returning this.
	ErrUnauthorized = errors.New("session expired or invalid")

	// ErrSubscriptionExpired means the account is valid but the trial or
	// subscription ran out. Callers show the paywall, not an error toast.
	ErrSubscriptionExpired = errors.New("subscription expired")

	// ErrNetwork wraps transport failures: the request never produced an
	// HTTP response.
	ErrNetwork = errors.New("network error")

	// ErrServer covers 5xx responses and undecodable bodies.
	ErrServer = errors.New("server error")
)

// APIError carries the backend's structured error payload for statuses
// that are not covered by a sentinel.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
