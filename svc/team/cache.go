package team

import (
	"context"
	"sync"
	"time"
)

// Cache stores server-confirmed team context per caller. It is purely
// an optimization: authorization checks never consult it, and every
// successful switch invalidates the caller's entry.
type Cache interface {
	Get(ctx context.Context, key string) ([]Team, bool)
	Set(ctx context.Context, key string, teams []Team, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoOpCache disables caching. The default for the service.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, key string) ([]Team, bool) { return nil, false }

func (NoOpCache) Set(ctx context.Context, key string, teams []Team, ttl time.Duration) error {
	return nil
}

func (NoOpCache) Delete(ctx context.Context, key string) error { return nil }

type memoryEntry struct {
	teams     []Team
	expiresAt time.Time
}

// InMemoryCache is a mutex-guarded TTL cache suitable for single
// process deployments and tests.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) ([]Team, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		_ = c.Delete(ctx, key)
		return nil, false
	}
	// Copy so callers cannot mutate the cached slice.
	teams := make([]Team, len(entry.teams))
	copy(teams, entry.teams)
	return teams, true
}

func (c *InMemoryCache) Set(ctx context.Context, key string, teams []Team, ttl time.Duration) error {
	stored := make([]Team, len(teams))
	copy(stored, teams)

	c.mu.Lock()
	c.entries[key] = memoryEntry{teams: stored, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}
