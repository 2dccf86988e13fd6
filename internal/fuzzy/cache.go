package fuzzy

import (
	"container/list"
	"sync"
)

// Cache provides LRU caching for pairwise match results.
// It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

// cacheEntry holds a cached score for one (query, target) pair.
type cacheEntry struct {
	key    string
	result Result
}

// NewCache creates a new LRU cache with the given maximum size.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &Cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// cacheKey joins query and target with a separator that cannot occur in
// either (NUL is not valid in queries typed into an editor buffer).
func cacheKey(query, target string) string {
	return query + "\x00" + target
}

// Get retrieves a cached result for a (query, target) pair.
func (c *Cache) Get(query, target string) (Result, bool) {
	key := cacheKey(query, target)

	// Read lock first: misses are the common case.
	c.mu.RLock()
	_, ok := c.items[key]
	if !ok {
		c.mu.RUnlock()
		return Result{}, false
	}
	c.mu.RUnlock()

	// Hit: write lock to update LRU order.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check in case the entry was evicted between locks.
	elem, ok := c.items[key]
	if !ok {
		return Result{}, false
	}

	c.lru.MoveToFront(elem)

	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	return copyResult(entry.result), true
}

// Set stores a result for a (query, target) pair.
func (c *Cache) Set(query, target string, result Result) {
	key := cacheKey(query, target)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
		entry.result = copyResult(result)
		return
	}

	if c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}

	entry := &cacheEntry{
		key:    key,
		result: copyResult(result),
	}
	elem := c.lru.PushFront(entry)
	c.items[key] = elem
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// evictOldest removes the least recently used entry.
// Must be called with lock held.
func (c *Cache) evictOldest() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	c.lru.Remove(elem)
	entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	delete(c.items, entry.key)
}

// copyResult deep-copies a result so callers cannot mutate cached state.
func copyResult(r Result) Result {
	copied := Result{
		Target: r.Target,
		Score:  r.Score,
	}
	if r.Matches != nil {
		copied.Matches = make([]int, len(r.Matches))
		copy(copied.Matches, r.Matches)
	}
	return copied
}
