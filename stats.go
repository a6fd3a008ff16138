package bookdex

import "time"

// engineStats carries the monotonic search counters. Plain fields suffice
// under the single-threaded execution model.
type engineStats struct {
	searches     int64
	totalTime    time.Duration
	totalResults int64
	cacheHits    int64
}

func (s *engineStats) record(elapsed time.Duration, results int) {
	s.searches++
	s.totalTime += elapsed
	s.totalResults += int64(results)
}

// PerformanceStats is a point-in-time snapshot of the engine counters and
// the index shape.
type PerformanceStats struct {
	TotalSearches     int64         `json:"totalSearches"`
	AverageSearchTime time.Duration `json:"averageSearchTime"`
	TotalResults      int64         `json:"totalResults"`
	CacheHits         int64         `json:"cacheHits"`
	CacheHitRate      float64       `json:"cacheHitRate"`
	CacheSize         int           `json:"cacheSize"`
	CacheCapacity     int           `json:"cacheCapacity"`
	HistorySize       int           `json:"historySize"`
	RecordCount       int           `json:"recordCount"`
	IndexedTokens     int           `json:"indexedTokens"`
	IndexFingerprint  uint64        `json:"indexFingerprint"`
}

// PerformanceStats returns the current snapshot. Counters cover general
// searches only; the average divides total latency by the search count,
// and the hit rate divides cache hits by the search count.
func (e *Engine) PerformanceStats() PerformanceStats {
	s := PerformanceStats{
		TotalSearches:    e.stats.searches,
		TotalResults:     e.stats.totalResults,
		CacheHits:        e.stats.cacheHits,
		HistorySize:      e.history.Len(),
		RecordCount:      len(e.records),
		IndexedTokens:    e.index.TokenCount(),
		IndexFingerprint: e.fingerprint,
	}
	if e.stats.searches > 0 {
		s.AverageSearchTime = e.stats.totalTime / time.Duration(e.stats.searches)
		s.CacheHitRate = float64(e.stats.cacheHits) / float64(e.stats.searches)
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
		s.CacheCapacity = e.cache.Capacity()
	}
	return s
}

// ClearCache drops every cached query result. The statistics counters are
// unaffected.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// ResetStats zeroes the search counters. The cache and its contents are
// unaffected.
func (e *Engine) ResetStats() {
	e.stats = engineStats{}
}
