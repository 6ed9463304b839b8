// Package settings abstracts agency-wide mutable settings such as dashboard PIN codes.
package settings

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound indicates the key has never been set.
var ErrNotFound = errors.New("setting not found")

// Store reads and writes settings by key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps settings in process memory.
type MemoryStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, exists := m.values[key]; exists {
		return value, nil
	}
	return "", ErrNotFound
}

// Set stores value under key.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// CachedStore serves reads from memory and writes through to a backing store.
type CachedStore struct {
	backing Store
	cache   *MemoryStore
}

// NewCachedStore wraps backing with an in-memory read cache.
func NewCachedStore(backing Store) *CachedStore {
	return &CachedStore{backing: backing, cache: NewMemoryStore()}
}

// Get returns the cached value, loading it from the backing store on a miss.
func (c *CachedStore) Get(ctx context.Context, key string) (string, error) {
	if value, err := c.cache.Get(ctx, key); err == nil {
		return value, nil
	}
	value, err := c.backing.Get(ctx, key)
	if err != nil {
		return "", err
	}
	_ = c.cache.Set(ctx, key, value)
	return value, nil
}

// Set writes value to the backing store, then to the cache.
func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := c.backing.Set(ctx, key, value); err != nil {
		return err
	}
	return c.cache.Set(ctx, key, value)
}
