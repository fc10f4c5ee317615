package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is an in-process Store backed by an expirable LRU
type MemoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, []byte]
}

// NewMemoryStore creates a store holding up to capacity entries for ttl
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{cache: expirable.NewLRU[string, []byte](capacity, nil, ttl)}
}

// Get returns a copy of the stored response
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores value when key is free
func (s *MemoryStore) Put(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Contains(key) {
		return false, nil
	}
	s.cache.Add(key, append([]byte(nil), value...))
	return true, nil
}
