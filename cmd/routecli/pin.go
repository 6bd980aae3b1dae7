package main

import (
	"context"
	"sync"
	"time"

	"bagusgo_backend/internal/routeclient"
)

// pinResolver reverse-geocodes dropped map pins in the background.
// Dragging a pin fires a burst of lookups; only the latest one may
// deliver its result, earlier in-flight responses are discarded.
type pinResolver struct {
	client *routeclient.Client

	mu  sync.Mutex
	gen uint64
}

func newPinResolver(client *routeclient.Client) *pinResolver {
	return &pinResolver{client: client}
}

func (p *pinResolver) Resolve(lat, lng float64, deliver func(address string, err error)) {
	p.mu.Lock()
	p.gen++
	ticket := p.gen
	p.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := p.client.ReverseGeocode(ctx, lat, lng)

		p.mu.Lock()
		stale := ticket != p.gen
		p.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			deliver("", err)
			return
		}
		deliver(result.FormattedAddress, nil)
	}()
}
