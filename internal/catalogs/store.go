// Package catalogs holds the live catalog snapshot the optimizer reads
// from.
package catalogs

import (
	"sync/atomic"

	"github.com/SoerenD/equipment-calculator-web/internal/entities/equipment"
)

// Store publishes one immutable *equipment.Catalogs snapshot at a time.
// Refreshes replace the whole snapshot in a single atomic pointer swap,
// so a search running concurrently with a refresh sees either the old
// set of five catalogs or the new one, never a mix.
type Store struct {
	current atomic.Pointer[equipment.Catalogs]
}

// NewStore creates a store seeded with sentinel-only catalogs, so a
// search before the first refresh returns the all-empty set instead of
// faulting.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(equipment.EmptyCatalogs())
	return s
}

// Snapshot returns the current catalog snapshot. The returned value is
// shared and must be treated as read-only.
func (s *Store) Snapshot() *equipment.Catalogs {
	return s.current.Load()
}

// Replace atomically swaps in a new snapshot. A nil snapshot is
// ignored; the store never publishes nil.
func (s *Store) Replace(next *equipment.Catalogs) {
	if next == nil {
		return
	}
	s.current.Store(next)
}
