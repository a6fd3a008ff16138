// Package cache implements the bounded query-result cache.
//
// # Eviction Policy
//
// Insertion checks capacity first: when the cache is full, the
// lowest-ranked quarter of entries (at least one) is removed before the
// new entry is stored. Entries rank by ascending access count with ties
// broken by ascending last access, so rarely used entries go first and
// plain recency only decides between equals. This is LRU with a frequency
// tiebreak, not FIFO.
//
// # Copy Semantics
//
// Put stores a copy of the result slice and Get returns a fresh copy per
// call, so callers may freely reorder or mutate what they receive without
// corrupting cached results.
package cache
