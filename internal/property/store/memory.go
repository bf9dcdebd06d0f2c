// Package store holds the registry's keyed record store.
package store

import (
	"context"
	"sync"

	"holdings/internal/property/models"
	"holdings/pkg/platform/sentinel"
)

// InMemory is the process-wide registry: one map from property id to record,
// guarded by a single reader/writer lock. Readers run concurrently; writers
// are exclusive. The coarse lock is deliberate: the registry is small and
// nothing here suggested per-key sharding is worth the complexity.
//
// All reads return copies, so callers can never mutate stored state. State
// lives only for the process lifetime; there is no persistence.
type InMemory struct {
	mu         sync.RWMutex
	properties map[string]models.Property
}

// NewInMemory creates an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{properties: make(map[string]models.Property)}
}

// Save inserts the record under its own ID, silently overwriting any existing
// record at that key.
func (s *InMemory) Save(_ context.Context, p models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = p
	return nil
}

// FindByID returns a copy of the record at id, or sentinel.ErrNotFound.
func (s *InMemory) FindByID(_ context.Context, id string) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.properties[id]; ok {
		return p, nil
	}
	return models.Property{}, sentinel.ErrNotFound
}

// List returns a snapshot of all records in map iteration order (unordered).
// Later mutations do not affect a returned snapshot.
func (s *InMemory) List(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, p)
	}
	return out, nil
}

// Delete removes the record at id if present. The bool reports whether
// anything was removed; a missing key is not an error.
func (s *InMemory) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return false, nil
	}
	delete(s.properties, id)
	return true, nil
}

// Count reports the number of stored records.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.properties), nil
}
