package geo

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/unklstewy/airforcenone/internal/errors"
)

// Cache stores resolved country names by CacheKey. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Add(key, value string)
	Len() int
}

// MapCache is an unbounded cache for single scans and tests.
type MapCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[string]string)}
}

func (c *MapCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *MapCache) Add(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// LRUCache bounds memory for long-running watch and serve sessions.
type LRUCache struct {
	c *lru.Cache[string, string]
}

// NewLRUCache returns a cache holding at most size keys.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Wrapf(err, "create geo cache of size %d", size)
	}
	return &LRUCache{c: c}, nil
}

func (c *LRUCache) Get(key string) (string, bool) {
	return c.c.Get(key)
}

func (c *LRUCache) Add(key, value string) {
	c.c.Add(key, value)
}

func (c *LRUCache) Len() int {
	return c.c.Len()
}

// NewCache picks the cache for a configured size: zero or less is unbounded.
func NewCache(size int) (Cache, error) {
	if size <= 0 {
		return NewMapCache(), nil
	}
	return NewLRUCache(size)
}
