package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Logical query identities the list screens read through the cache.
const (
	KeyStudents       = "students"
	KeyPayments       = "payments"
	KeyUpdateRequests = "update_requests"
)

// Store is an in-memory read-through cache keyed by logical query identity.
// Concurrent fetches of the same key are collapsed into a single store call;
// mutations invalidate their keys so the next read refetches. Entry
// assignment is last write wins.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
}

var Queries = New()

func New() *Store {
	return &Store{entries: make(map[string]any)}
}

// Fetch returns the cached value for key, running fetch to populate it on a
// miss. Fetch errors are returned to every waiting caller and never cached.
func (s *Store) Fetch(key string, fetch func() (any, error)) (any, error) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = v
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate drops the given keys so their next read hits the store.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}
