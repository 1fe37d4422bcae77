package rate

import (
	"fxconverter/internal/domain"
	"sync"
)

// Store holds the active rate snapshot. Readers share the lock; Replace is exclusive.
type Store struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the active snapshot, or false if nothing was loaded yet.
func (s *Store) Snapshot() (*domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot != nil
}

// Replace swaps in a new snapshot. Nil is ignored so a loaded store never goes back to empty.
func (s *Store) Replace(snapshot *domain.Snapshot) {
	if snapshot == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
