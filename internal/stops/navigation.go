package stops

import "net/url"

// NavigationURL builds a Google Maps directions link that opens
// turn-by-turn driving navigation to the given address.
func NavigationURL(address string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", address)
	q.Set("travelmode", "driving")
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
