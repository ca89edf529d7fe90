package store

import (
	"sync"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// SnapshotStore is a thread-safe single-slot exchange between the poller and
// the ticker. Publish replaces the whole snapshot atomically; readers always
// see one complete snapshot, never a partial update.
type SnapshotStore struct {
	mu      sync.RWMutex
	snap    domain.Snapshot
	version uint64
	ok      bool
}

// NewSnapshotStore constructs an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish installs a new snapshot and bumps the version.
func (s *SnapshotStore) Publish(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = snap
	s.version++
	s.ok = true
}

// Current returns the latest snapshot, its version, and whether any
// snapshot has been published yet.
func (s *SnapshotStore) Current() (domain.Snapshot, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.version, s.ok
}

// Version returns the current snapshot version without copying the data.
func (s *SnapshotStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
