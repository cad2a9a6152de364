package sentstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process store for tests and throwaway runs.
type MemoryStore struct {
	mu     sync.Mutex
	emails []string
	seen   map[string]struct{}
}

// NewMemoryStore creates a store pre-populated with the given addresses.
func NewMemoryStore(emails ...string) *MemoryStore {
	s := &MemoryStore{seen: make(map[string]struct{})}
	_ = s.Add(context.Background(), emails...)
	return s
}

// Load returns the stored addresses in insertion order.
func (s *MemoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out, nil
}

// Add inserts addresses, ignoring duplicates.
func (s *MemoryStore) Add(_ context.Context, emails ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range emails {
		if _, ok := s.seen[e]; ok {
			continue
		}
		s.seen[e] = struct{}{}
		s.emails = append(s.emails, e)
	}
	return nil
}

// Close does nothing for memory stores.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
