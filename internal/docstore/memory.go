package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a mutex-guarded in-process Store with the same semantics as
// the PostgreSQL backend. It serves unit tests and the memory database driver
// used in development.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]Record),
	}
}

// collection returns the named collection, or nil when nothing was ever
// written to it. Lookups on the nil map are safe, so readers holding only the
// read lock share this path.
func (s *MemoryStore) collection(name string) map[string]Record {
	return s.collections[name]
}

// ensureCollection creates the collection on first write. Callers must hold
// the write lock.
func (s *MemoryStore) ensureCollection(name string) map[string]Record {
	col, ok := s.collections[name]
	if !ok {
		col = make(map[string]Record)
		s.collections[name] = col
	}
	return col
}

func cloneMetadata(metadata Metadata) Metadata {
	cloned := make(Metadata, len(metadata))
	for k, v := range metadata {
		cloned[k] = v
	}
	return cloned
}

// Put stores a new record.
func (s *MemoryStore) Put(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.ensureCollection(collection)
	if _, exists := col[id]; exists {
		return ErrAlreadyExists
	}

	col[id] = Record{
		ID:       id,
		Data:     data,
		Metadata: cloneMetadata(metadata),
		Version:  1,
	}
	return nil
}

// Get fetches a record by id.
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collection(collection)[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := rec
	copied.Metadata = cloneMetadata(rec.Metadata)
	return &copied, nil
}

// Query returns records matching the filter, ordered by id.
func (s *MemoryStore) Query(ctx context.Context, collection string, filter Filter, limit, offset int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Record{}
	for _, rec := range s.collection(collection) {
		if filter == nil || filter.matches(rec.Metadata) {
			copied := rec
			copied.Metadata = cloneMetadata(rec.Metadata)
			matched = append(matched, copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if offset > 0 {
		if offset >= len(matched) {
			return []Record{}, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}

// Count returns the number of records matching the filter.
func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.collection(collection) {
		if filter == nil || filter.matches(rec.Metadata) {
			count++
		}
	}
	return count, nil
}

// Update replaces a record unconditionally and bumps its version.
func (s *MemoryStore) Update(ctx context.Context, collection, id string, record interface{}, metadata Metadata) error {
	return s.update(ctx, collection, id, record, metadata, nil)
}

// UpdateVersioned replaces a record only when the stored version matches.
func (s *MemoryStore) UpdateVersioned(ctx context.Context, collection, id string, record interface{}, metadata Metadata, expectedVersion int64) error {
	return s.update(ctx, collection, id, record, metadata, &expectedVersion)
}

func (s *MemoryStore) update(ctx context.Context, collection, id string, record interface{}, metadata Metadata, expectedVersion *int64) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(collection)
	existing, ok := col[id]
	if !ok {
		return ErrNotFound
	}

	if expectedVersion != nil && existing.Version != *expectedVersion {
		return ErrVersionConflict
	}

	col[id] = Record{
		ID:       id,
		Data:     data,
		Metadata: cloneMetadata(metadata),
		Version:  existing.Version + 1,
	}
	return nil
}

// Delete removes a record, reporting whether it existed.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(collection)
	if _, ok := col[id]; !ok {
		return false, nil
	}

	delete(col, id)
	return true, nil
}
