package inmemorycache

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value      V
	expiration time.Time
}

type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Delete(key string) bool
}

// InMemoryCache expires entries after their TTL and hands every removed
// value to the eviction callback, outside the lock.
type InMemoryCache[V any] struct {
	cache           map[string]cacheEntry[V]
	mutex           sync.Mutex
	cleanupInterval time.Duration
	onEvict         func(key string, value V)
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryCacheProvider[V any](cleanupInterval time.Duration, onEvict func(key string, value V)) *InMemoryCache[V] {
	provider := &InMemoryCache[V]{
		cache:           make(map[string]cacheEntry[V]),
		cleanupInterval: cleanupInterval,
		onEvict:         onEvict,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache[V]) Get(key string) (V, bool) {
	var zero V

	m.mutex.Lock()
	entry, exists := m.cache[key]
	if !exists {
		m.mutex.Unlock()
		return zero, false
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, key)
		m.mutex.Unlock()
		m.evict(key, entry.value)
		return zero, false
	}
	m.mutex.Unlock()

	return entry.value, true
}

func (m *InMemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	m.mutex.Lock()
	previous, replaced := m.cache[key]
	m.cache[key] = cacheEntry[V]{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
	m.mutex.Unlock()

	if replaced {
		m.evict(key, previous.value)
	}
}

func (m *InMemoryCache[V]) Delete(key string) bool {
	m.mutex.Lock()
	entry, exists := m.cache[key]
	if exists {
		delete(m.cache, key)
	}
	m.mutex.Unlock()

	if exists {
		m.evict(key, entry.value)
	}
	return exists
}

func (m *InMemoryCache[V]) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}

// Stop ends the cleanup loop and evicts everything still cached.
func (m *InMemoryCache[V]) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)

		m.mutex.Lock()
		remaining := m.cache
		m.cache = make(map[string]cacheEntry[V])
		m.mutex.Unlock()

		for k, v := range remaining {
			m.evict(k, v.value)
		}
	})
}

func (m *InMemoryCache[V]) evict(key string, value V) {
	if m.onEvict != nil {
		m.onEvict(key, value)
	}
}

func (m *InMemoryCache[V]) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
		}

		expired := make(map[string]V)

		m.mutex.Lock()
		now := time.Now()
		for k, v := range m.cache {
			if now.After(v.expiration) {
				expired[k] = v.value
				delete(m.cache, k)
			}
		}
		m.mutex.Unlock()

		for k, v := range expired {
			m.evict(k, v)
		}
	}
}
