package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgressStore = (*FileStore)(nil)

// FileStore keeps the whole key-value map in one JSON file, rewritten
// on every Set through a temp-file rename so a crash mid-write leaves
// the previous state intact. This is what makes resume survive a
// restart.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
	log     *logger.Logger
}

// NewFileStore opens (or creates) the store at path. An unreadable or
// corrupt file is treated as empty: losing saved progress degrades to
// "no prior session", never to a startup failure.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state dir: %w", err)
		}
	}

	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
		log:     log,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run.
	case err != nil:
		log.Warn("state file unreadable, starting empty: %v", err)
	default:
		if err := json.Unmarshal(data, &s.entries); err != nil {
			log.Warn("state file corrupt, starting empty: %v", err)
			s.entries = make(map[string]string)
		}
	}

	log.Debug("file store opened at %s (%d entries)", path, len(s.entries))
	return s, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(data), nil
}

// Set stores a value under key and flushes the file.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = string(value)
	return s.flush()
}

// flush writes the map to disk atomically. Caller holds the mutex.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
