package utils

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"bloghub/internal/logging"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// GlobalCache is a small process-local TTL cache on top of an LRU.
type GlobalCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *GlobalCache
	cacheOnce     sync.Once
)

// GetCache returns the singleton cache instance.
func GetCache() *GlobalCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](500)
		if err != nil {
			logging.Log.WithError(err).Fatal("failed to create LRU cache")
		}
		cacheInstance = &GlobalCache{lruCache: l}
	})
	return cacheInstance
}

// Set stores data under key for the given TTL.
func (c *GlobalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached data, or false when missing or expired.
func (c *GlobalCache) Get(key string) (interface{}, bool) {
	item, ok := c.lruCache.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(item.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil, false
	}
	return item.Data, true
}

// Delete removes a key, used to invalidate after writes.
func (c *GlobalCache) Delete(key string) {
	c.lruCache.Remove(key)
}
