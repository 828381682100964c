package mapping

import (
	"context"
	"sync"
)

// MemoryStore keeps mappings in process memory. Used by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Mapping
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Mapping),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Mapping, error) {
	s.mu.RLock()
	m, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, m Mapping) error {
	s.mu.Lock()
	s.data[key] = m
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Available() bool {
	return true
}
