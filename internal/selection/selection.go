// Package selection holds the per-request selection state of the booking
// pages: a multi-select set for dishes and a single choice for rooms.
package selection

import (
	"net/url"
	"strings"
)

// Lookup reports whether an ID exists in a catalog.
type Lookup interface {
	Has(id string) bool
}

// Set is an unordered collection of selected IDs without duplicates.
// IDs reports them in insertion order for display. Set is a value: Toggle
// returns a new Set and never mutates the receiver.
type Set struct {
	ids []string
}

// NewSet returns a set holding the non-blank seeds, without duplicates.
func NewSet(seed ...string) Set {
	var s Set
	for _, id := range seed {
		id = strings.TrimSpace(id)
		if id == "" || s.Contains(id) {
			continue
		}
		s.ids = append(s.ids, id)
	}
	return s
}

// Toggle adds id when absent and removes it when present.
func (s Set) Toggle(id string) Set {
	next := Set{ids: make([]string, 0, len(s.ids)+1)}
	removed := false
	for _, existing := range s.ids {
		if existing == id {
			removed = true
			continue
		}
		next.ids = append(next.ids, existing)
	}
	if !removed {
		next.ids = append(next.ids, id)
	}
	return next
}

// Contains reports whether id is selected.
func (s Set) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected IDs.
func (s Set) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether nothing is selected.
func (s Set) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns the selected IDs in insertion order.
func (s Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Single is an optional single selected ID.
type Single struct {
	id string
}

// Select replaces any existing selection with id. A blank id clears it.
func (s Single) Select(id string) Single {
	return Single{id: strings.TrimSpace(id)}
}

// ID returns the selected ID and whether one is set.
func (s Single) ID() (string, bool) {
	return s.id, s.id != ""
}

// IsSet reports whether an ID is selected.
func (s Single) IsSet() bool {
	return s.id != ""
}

// SeedFromQuery seeds a set from the first value of key in values. Blank
// values and IDs unknown to known are ignored and yield an empty set.
func SeedFromQuery(values url.Values, key string, known Lookup) Set {
	id, ok := seed(values, key, known)
	if !ok {
		return Set{}
	}
	return NewSet(id)
}

// SingleFromQuery is SeedFromQuery for a single selection.
func SingleFromQuery(values url.Values, key string, known Lookup) Single {
	id, ok := seed(values, key, known)
	if !ok {
		return Single{}
	}
	return Single{id: id}
}

func seed(values url.Values, key string, known Lookup) (string, bool) {
	id := strings.TrimSpace(values.Get(key))
	if id == "" {
		return "", false
	}
	if known != nil && !known.Has(id) {
		return "", false
	}
	return id, true
}
