// Package memory provides in-process implementations of the tng ports,
// used in tests and as the default backend of the serve command.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tng/pkg/domain"
)

// Store implements ports.RunStore with a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	runs map[string]domain.RunRecord
}

// NewStore creates an empty in-memory run store.
func NewStore() *Store {
	return &Store{runs: make(map[string]domain.RunRecord)}
}

// Save persists a copy of the record.
func (s *Store) Save(_ context.Context, rec *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[rec.ID] = *rec
	return nil
}

// Load retrieves a record by ID.
func (s *Store) Load(_ context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &rec, nil
}

// Delete removes a record by ID. Deleting an unknown ID is a no-op.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}
