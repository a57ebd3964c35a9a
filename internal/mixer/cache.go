package mixer

import (
	"container/list"
	"sync"
)

// Cache memoizes mix results keyed by the mixer's signature string, with
// least-recently-used eviction once the capacity is reached.
//
// The key is the ordered sequence of hex strings of the mixer's contents, so
// two mixers holding the same multiset in a different insertion order produce
// distinct entries. That is a deliberate property of the design, not an
// oversight.
//
// Cache is safe for concurrent use. In practice every call arrives under the
// owning Mixer's lock, but the cache locks independently so it can be shared
// or tested on its own.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
}

type cacheEntry struct {
	key   string
	color Color
}

// DefaultCacheSize is the cache capacity used when none is configured.
const DefaultCacheSize = 100

// NewCache creates a result cache holding at most capacity entries.
// A capacity below 1 falls back to DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached color for key, marking the entry as most recently
// used. The second return value reports whether the key was present.
func (c *Cache) Get(key string) (Color, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return Color{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).color, true
}

// Put stores a color under key. Storing an existing key refreshes its value
// and recency. When the cache is full, the least-recently-used entry is
// evicted first.
func (c *Cache) Put(key string, color Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).color = color
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, color: color})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element, c.capacity)
}
