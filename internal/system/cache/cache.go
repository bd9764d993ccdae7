/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a generic in-memory LRU cache with time based expiry.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agribot/agribot/internal/system/config"
	"github.com/agribot/agribot/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 3600
)

// CacheInterface defines the operations of a named cache.
type CacheInterface[T any] interface {
	Set(key string, value T)
	Get(key string) (T, bool)
	Delete(key string)
	Clear()
	IsEnabled() bool
	GetName() string
	GetStats() CacheStat
}

// CacheStat holds the runtime statistics of a cache.
type CacheStat struct {
	Enabled    bool
	Size       int
	MaxSize    int
	HitCount   int64
	MissCount  int64
	EvictCount int64
}

// cacheEntry is a value held in the cache together with its bookkeeping.
type cacheEntry[T any] struct {
	key         string
	value       T
	expiryTime  time.Time
	listElement *list.Element
}

// inMemoryCache implements CacheInterface with LRU eviction.
type inMemoryCache[T any] struct {
	enabled     bool
	name        string
	entries     map[string]*cacheEntry[T]
	accessOrder *list.List
	mu          sync.Mutex
	size        int
	ttl         time.Duration
	clock       clock.Clock
	hitCount    int64
	missCount   int64
	evictCount  int64
}

// GetCache returns a new cache configured by the cache section of deployment.yaml.
// A property entry with a matching name overrides the global size and TTL.
func GetCache[T any](name string) CacheInterface[T] {
	cacheConfig := config.GetAgriBotRuntime().Config.Cache
	enabled := !cacheConfig.Disabled
	size := cacheConfig.Size
	ttl := cacheConfig.TTL
	for _, property := range cacheConfig.Properties {
		if property.Name != name {
			continue
		}
		enabled = enabled && property.Enable
		if property.Size > 0 {
			size = property.Size
		}
		if property.TTL > 0 {
			ttl = property.TTL
		}
	}

	return newInMemoryCache[T](name, enabled, size, time.Duration(ttl)*time.Second, clock.New())
}

// newInMemoryCache creates a new in-memory cache.
func newInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration,
	clk clock.Clock) *inMemoryCache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String("name", name))

	if !enabled {
		logger.Warn("In-memory cache is disabled")
		return &inMemoryCache[T]{name: name}
	}

	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL * time.Second
	}
	logger.Debug("Initializing in-memory cache", log.Int("size", size), log.Duration("ttl", ttl))

	return &inMemoryCache[T]{
		enabled:     true,
		name:        name,
		entries:     make(map[string]*cacheEntry[T]),
		accessOrder: list.New(),
		size:        size,
		ttl:         ttl,
		clock:       clk,
	}
}

// Set adds or updates an entry in the cache.
func (c *inMemoryCache[T]) Set(key string, value T) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := c.clock.Now().Add(c.ttl)
	if existing, ok := c.entries[key]; ok {
		existing.value = value
		existing.expiryTime = expiryTime
		c.accessOrder.MoveToFront(existing.listElement)
		return
	}

	if len(c.entries) >= c.size {
		c.evictOldest()
	}
	entry := &cacheEntry[T]{key: key, value: value, expiryTime: expiryTime}
	entry.listElement = c.accessOrder.PushFront(entry)
	c.entries[key] = entry
}

// Get retrieves a live entry from the cache.
func (c *inMemoryCache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.missCount++
		return zero, false
	}
	if c.clock.Now().After(entry.expiryTime) {
		c.remove(entry)
		c.missCount++
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++
	return entry.value, true
}

// Delete removes an entry from the cache.
func (c *inMemoryCache[T]) Delete(key string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.remove(entry)
	}
}

// Clear removes all entries from the cache.
func (c *inMemoryCache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry[T])
	c.accessOrder.Init()
}

// IsEnabled reports whether the cache stores entries.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// GetStats returns the runtime statistics of the cache.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStat{
		Enabled:    true,
		Size:       len(c.entries),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		EvictCount: c.evictCount,
	}
}

// evictOldest removes the least recently used entry. The caller holds the lock.
func (c *inMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	c.remove(oldest.Value.(*cacheEntry[T]))
	c.evictCount++
}

// remove unlinks the entry. The caller holds the lock.
func (c *inMemoryCache[T]) remove(entry *cacheEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.entries, entry.key)
}
