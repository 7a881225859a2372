package store

import (
	"context"
	"sort"
	"sync"

	"foliopress/pkg/core/document"
)

// MemoryStore is an in-memory catalog store for development and testing.
// Catalogs are deep-copied on the way in and out so callers can never
// mutate stored state through a shared pointer.
type MemoryStore struct {
	mu       sync.RWMutex
	catalogs map[string]*document.Catalog
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{catalogs: make(map[string]*document.Catalog)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*document.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.catalogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.Clone(), nil
}

func (s *MemoryStore) Put(ctx context.Context, c *document.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs[c.ID] = c.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.catalogs, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(s.catalogs))
	for _, c := range s.catalogs {
		out = append(out, summarize(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
