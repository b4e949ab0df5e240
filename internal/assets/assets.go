// Package assets loads face image bytes from local files or HTTP URLs and
// caches them in memory.
package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Manager fetches image bytes by reference. A reference starting with
// http:// or https:// is fetched over the network; anything else is read
// from disk. Results are cached, so re-showing an image is free.
type Manager struct {
	client *http.Client
	cache  *Cache
}

// NewManager creates an asset manager with a 10 second fetch timeout.
func NewManager() *Manager {
	return &Manager{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  NewCache(),
	}
}

// Load returns the raw bytes for an image reference.
func (m *Manager) Load(ref string) ([]byte, error) {
	if data, ok := m.cache.Get(ref); ok {
		return data, nil
	}

	var data []byte
	var err error
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		data, err = m.fetch(ref)
	} else {
		data, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ref, err)
	}

	m.cache.Set(ref, data)
	return data, nil
}

func (m *Manager) fetch(url string) ([]byte, error) {
	resp, err := m.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Stats returns cache hit/miss counters, for diagnostics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory byte cache.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache. Takes the write lock because it also
// bumps the hit/miss counters.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns hit/miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
