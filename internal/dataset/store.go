package dataset

import (
	"sync"
)

// Store is the single owner of the canonical dataset snapshot. All
// consumers read whole snapshots; a refresh swaps the pointer, so a
// request in flight keeps the snapshot it started with.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{snap: &Snapshot{Data: map[string]BrandData{}}}
}

// Swap installs a new snapshot
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current snapshot. Callers must treat it as
// read-only; derived values go on new records.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
