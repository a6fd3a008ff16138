package cache

import (
	"slices"
	"sort"

	"github.com/bookdex/bookdex/model"
)

// DefaultCapacity bounds the number of cached queries when no capacity is
// configured.
const DefaultCapacity = 1000

// Cache is a bounded query-result cache keyed by the raw query string.
// Entries are invalidated only by capacity-driven eviction, never by time.
// Recency is tracked with a logical tick instead of wall-clock timestamps,
// so eviction order is deterministic. A Cache belongs to one engine
// instance and is not safe for concurrent use.
type Cache struct {
	capacity  int
	entries   map[string]*entry
	tick      uint64
	hits      int64
	evictions int64
}

type entry struct {
	results     []model.Record
	lastAccess  uint64
	accessCount uint64
}

// New creates a Cache bounded to capacity entries. A non-positive
// capacity selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*entry),
	}
}

// Get returns a copy of the results cached under key. A hit increments
// the entry's access counter and refreshes its recency.
func (c *Cache) Get(key string) ([]model.Record, bool) {
	ent, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.tick++
	ent.lastAccess = c.tick
	ent.accessCount++
	c.hits++
	return slices.Clone(ent.results), true
}

// Put stores a copy of results under key. When the cache is already at
// capacity and key is new, the lowest-ranked quarter of entries is evicted
// first: ranked by ascending access count, ties by ascending last access.
func (c *Cache) Put(key string, results []model.Record) {
	c.tick++
	if ent, ok := c.entries[key]; ok {
		ent.results = slices.Clone(results)
		ent.lastAccess = c.tick
		return
	}
	if len(c.entries) >= c.capacity {
		c.evict(max(1, c.capacity/4))
	}
	c.entries[key] = &entry{
		results:    slices.Clone(results),
		lastAccess: c.tick,
	}
}

// Contains reports whether key is cached, without touching access
// bookkeeping.
func (c *Cache) Contains(key string) bool {
	_, ok := c.entries[key]
	return ok
}

func (c *Cache) evict(n int) {
	type ranked struct {
		key string
		ent *entry
	}
	all := make([]ranked, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, ranked{key: k, ent: e})
	}
	// Ticks are unique, so the order is total and the sort deterministic.
	sort.Slice(all, func(i, j int) bool {
		if all[i].ent.accessCount != all[j].ent.accessCount {
			return all[i].ent.accessCount < all[j].ent.accessCount
		}
		return all[i].ent.lastAccess < all[j].ent.lastAccess
	})
	if n > len(all) {
		n = len(all)
	}
	for _, r := range all[:n] {
		delete(c.entries, r.key)
	}
	c.evictions += int64(n)
}

// Clear drops every entry. The hit and eviction counters are kept; they
// are monotonic for the lifetime of the cache.
func (c *Cache) Clear() {
	c.entries = make(map[string]*entry)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Capacity returns the configured entry bound.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Hits returns the number of cache hits served.
func (c *Cache) Hits() int64 {
	return c.hits
}

// Evictions returns the number of entries evicted so far.
func (c *Cache) Evictions() int64 {
	return c.evictions
}
