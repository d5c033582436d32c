// Package storage provides progress persistence implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgressStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory key-value store. Safe for concurrent
// access. Contents vanish with the process, so it backs tests and
// ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
		log:     log,
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.entries[key]
	if !ok {
		s.log.Debug("key not found: %s", key)
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a value under key, overwriting any previous value.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	s.log.Debug("stored %d bytes under %s", len(value), key)
	return nil
}
