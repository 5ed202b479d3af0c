package store

import "sync"

// MemoryStore is an in-memory LocalStore for tests and ephemeral sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return NewSnapshot(), nil
	}
	return s.snapshot, nil
}

func (s *MemoryStore) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot.Version = Version
	s.snapshot = snapshot
	return nil
}
