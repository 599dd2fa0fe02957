package entity

import (
	"context"
	"fmt"
	"sync"
)

// RegistryFetcher is the boundary to the (external) entity/device
// registry. Implementations fetch the entity-id → device-id mapping.
type RegistryFetcher interface {
	FetchEntityDevices(ctx context.Context) (map[string]string, error)
}

// RegistryCache memoizes entity → device lookups for the whole
// process. It is populated at most once until explicitly cleared, and
// entries are first-write-wins idempotent upserts, so concurrent reads
// are safe alongside population.
type RegistryCache struct {
	mu      sync.RWMutex
	entries map[string]string
	fetched bool
}

func NewRegistryCache() *RegistryCache {
	return &RegistryCache{entries: make(map[string]string)}
}

// Get returns the device id cached for an entity.
func (c *RegistryCache) Get(entityID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	deviceID, ok := c.entries[entityID]
	return deviceID, ok
}

// Upsert records a resolution. The first write for an entity wins;
// later writes for the same id are no-ops.
func (c *RegistryCache) Upsert(entityID, deviceID string) {
	if entityID == "" || deviceID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[entityID]; !ok {
		c.entries[entityID] = deviceID
	}
}

// Clear drops every entry and allows one more population attempt.
func (c *RegistryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
	c.fetched = false
}

// EnsurePopulated runs the fetcher once per process lifetime (until
// Clear). A fetch failure is returned for logging but leaves the cache
// usable: lookups simply miss and callers emit placeholder chips.
func (c *RegistryCache) EnsurePopulated(ctx context.Context, fetcher RegistryFetcher) error {
	c.mu.Lock()
	if c.fetched {
		c.mu.Unlock()
		return nil
	}
	c.fetched = true
	c.mu.Unlock()

	mapping, err := fetcher.FetchEntityDevices(ctx)
	if err != nil {
		return fmt.Errorf("fetching entity registry: %w", err)
	}
	for entityID, deviceID := range mapping {
		c.Upsert(entityID, deviceID)
	}
	return nil
}
