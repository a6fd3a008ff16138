package bookdex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(mode string, results int, duration time.Duration) {
//	    p.searchCounter.Inc()
//	    // ... record mode, result count, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSearch is called after each query operation.
	// mode names the query kind (search, field, fuzzy, regex),
	// results is the number of records returned.
	RecordSearch(mode string, results int, duration time.Duration)

	// RecordCacheHit is called when the result cache answers a general
	// search without recomputing it.
	RecordCacheHit()

	// RecordCacheMiss is called when a general search misses the cache.
	RecordCacheMiss()

	// RecordEviction is called when storing a result displaces cached
	// entries. evicted is the number of entries removed.
	RecordEviction(evicted int)

	// RecordFilter is called after each filter operation.
	// kind names the criterion (category, status, progress, date, tags,
	// combined), matched is the number of records retained.
	RecordFilter(kind string, matched int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(string, int, time.Duration) {}
func (NoopMetricsCollector) RecordCacheHit()                         {}
func (NoopMetricsCollector) RecordCacheMiss()                        {}
func (NoopMetricsCollector) RecordEviction(int)                      {}
func (NoopMetricsCollector) RecordFilter(string, int)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Counters use atomics, so one collector may be shared across engines.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	CacheHits        atomic.Int64
	CacheMisses      atomic.Int64
	Evictions        atomic.Int64
	FilterCount      atomic.Int64
	FilterMatched    atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(mode string, results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordCacheHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHit() {
	b.CacheHits.Add(1)
}

// RecordCacheMiss implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheMiss() {
	b.CacheMisses.Add(1)
}

// RecordEviction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEviction(evicted int) {
	b.Evictions.Add(int64(evicted))
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(kind string, matched int) {
	b.FilterCount.Add(1)
	b.FilterMatched.Add(int64(matched))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		CacheHits:      b.CacheHits.Load(),
		CacheMisses:    b.CacheMisses.Load(),
		CacheHitRate:   b.getCacheHitRate(),
		Evictions:      b.Evictions.Load(),
		FilterCount:    b.FilterCount.Load(),
		FilterMatched:  b.FilterMatched.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getCacheHitRate() float64 {
	hits := b.CacheHits.Load()
	total := hits + b.CacheMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchResults  int64
	SearchAvgNanos int64
	CacheHits      int64
	CacheMisses    int64
	CacheHitRate   float64
	Evictions      int64
	FilterCount    int64
	FilterMatched  int64
}
