// Package stops tracks delivery progress across an optimized route and
// builds navigation handoff links for individual stops.
package stops

import "sync"

// Stop is one leg of an optimized route as returned by the optimizer.
type Stop struct {
	Address    string  `json:"address"`
	DistanceKm float64 `json:"distance_km"`
	Duration   string  `json:"duration"`
}

// Tracker holds the current route and the set of stops marked done.
// Completion is keyed by stop index, so a new route always starts
// with every stop pending.
type Tracker struct {
	mu    sync.Mutex
	stops []Stop
	done  map[int]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{done: make(map[int]struct{})}
}

// Replace installs a new route and clears all completion state.
func (t *Tracker) Replace(stops []Stop) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stops = make([]Stop, len(stops))
	copy(t.stops, stops)
	t.done = make(map[int]struct{})
}

// MarkDone marks the stop at index i as completed. Marking an already
// completed stop is a no-op. Out-of-range indexes are ignored.
func (t *Tracker) MarkDone(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.stops) {
		return
	}
	t.done[i] = struct{}{}
}

// MarkUndone returns the stop at index i to pending. Undoing a stop
// that was never marked is a no-op.
func (t *Tracker) MarkUndone(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.stops) {
		return
	}
	delete(t.done, i)
}

// IsDone reports whether the stop at index i has been completed.
func (t *Tracker) IsDone(i int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.done[i]
	return ok
}

// DoneCount returns how many stops are completed.
func (t *Tracker) DoneCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.done)
}

// Stops returns a copy of the current route in optimizer order.
func (t *Tracker) Stops() []Stop {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Stop, len(t.stops))
	copy(out, t.stops)
	return out
}

// Remaining returns the indexes of stops not yet completed, in route
// order.
func (t *Tracker) Remaining() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []int
	for i := range t.stops {
		if _, ok := t.done[i]; !ok {
			out = append(out, i)
		}
	}
	return out
}
