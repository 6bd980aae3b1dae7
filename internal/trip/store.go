// Package trip holds the in-session working list of delivery addresses
// a courier assembles before requesting an optimized route.
package trip

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Address is one entry in the working trip list.
type Address struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Store is a concurrency-safe ordered list of trip addresses.
// IDs are assigned by the store and never reused within a session.
type Store struct {
	mu    sync.Mutex
	items []Address
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a new address and returns it. Blank text is rejected
// and leaves the list unchanged.
func (s *Store) Add(text string) (Address, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Address{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	addr := Address{ID: uuid.NewString(), Text: trimmed}
	s.items = append(s.items, addr)
	return addr, true
}

// Update replaces the text of the address with the given id. Unknown
// ids and blank text are no-ops.
func (s *Store) Update(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Text = trimmed
			return true
		}
	}
	return false
}

// Delete removes the address with the given id, preserving the order
// of the remaining entries. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll swaps the whole list, assigning fresh ids. Blank entries
// are skipped.
func (s *Store) ReplaceAll(texts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	for _, t := range texts {
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			continue
		}
		s.items = append(s.items, Address{ID: uuid.NewString(), Text: trimmed})
	}
}

// List returns a copy of the current addresses in insertion order.
func (s *Store) List() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Address, len(s.items))
	copy(out, s.items)
	return out
}

// Texts returns just the address strings in order, ready to send to
// the optimizer.
func (s *Store) Texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.items))
	for i, a := range s.items {
		out[i] = a.Text
	}
	return out
}

// Len reports the number of addresses currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
