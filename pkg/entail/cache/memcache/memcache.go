package memcache

import (
	"context"
	"sync"

	"github.com/cognicore/entail/pkg/entail/cache"
)

// Store is an in-memory implementation of cache.Store for tests and for
// processes that want compile-once behavior without a file on disk.
type Store struct {
	mu    sync.RWMutex
	snaps map[string]*cache.Snapshot
}

// New creates a new in-memory snapshot store.
func New() *Store {
	return &Store{snaps: make(map[string]*cache.Snapshot)}
}

// Close implements cache.Store.
func (s *Store) Close() error { return nil }

// Load implements cache.Store.
func (s *Store) Load(ctx context.Context, fingerprint string) (*cache.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[fingerprint]
	if !ok {
		return nil, false, nil
	}
	cp := *snap
	return &cp, true, nil
}

// Save implements cache.Store.
func (s *Store) Save(ctx context.Context, snap *cache.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	s.snaps[snap.Fingerprint] = &cp
	return nil
}
