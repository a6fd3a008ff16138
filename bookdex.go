package bookdex

import (
	"fmt"
	"slices"
	"time"

	"github.com/bookdex/bookdex/analysis"
	"github.com/bookdex/bookdex/cache"
	"github.com/bookdex/bookdex/index"
	"github.com/bookdex/bookdex/model"
	"github.com/bookdex/bookdex/suggest"
)

// Engine is an in-memory search and filtering engine over one immutable
// book collection. It is built once from the full collection and answers
// queries indefinitely; there is no teardown.
//
// An Engine is synchronous and single-threaded: every operation runs to
// completion before returning, and no locking is performed. Callers in
// concurrent contexts must serialize access externally, or use one Engine
// per goroutine.
type Engine struct {
	opts     options
	logger   *Logger
	metrics  MetricsCollector
	analyzer *analysis.Analyzer
	index    *index.Index

	// records is the original collection in construction order; working is
	// the set filter operations install and SortBy operates on.
	records []model.Record
	working []model.Record

	fingerprint uint64

	cache     *cache.Cache
	history   *suggest.History
	suggester *suggest.Suggester
	stats     engineStats
}

// New builds an Engine over records. The collection is copied and indexed
// during construction; records must have unique, non-empty IDs.
func New(records []model.Record, optFns ...Option) (*Engine, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, &ErrInvalidRecord{
				Index:  i,
				Reason: "empty id",
				cause:  ErrInvalidArgument,
			}
		}
		if first, dup := seen[rec.ID]; dup {
			return nil, &ErrInvalidRecord{
				Index:  i,
				ID:     rec.ID,
				Reason: fmt.Sprintf("duplicate of index %d", first),
				cause:  ErrInvalidArgument,
			}
		}
		seen[rec.ID] = i
	}

	start := time.Now()
	a := analysis.New(analysis.Config{
		CaseSensitive: o.caseSensitive,
		Stopwords:     o.stopwords,
		Separators:    o.separators,
	})
	recs := slices.Clone(records)
	ix := index.Build(recs, a)

	e := &Engine{
		opts:        o,
		logger:      o.logger,
		metrics:     o.metricsCollector,
		analyzer:    a,
		index:       ix,
		records:     recs,
		working:     recs,
		fingerprint: ix.Fingerprint(),
		history:     suggest.NewHistory(o.historyMaxSize),
	}
	if o.cacheEnabled {
		e.cache = cache.New(o.cacheSize)
	}
	e.suggester = suggest.New(recs, o.searchFields, a, e.history)

	e.logger.LogBuild(len(recs), ix.TokenCount(), e.fingerprint, time.Since(start))
	return e, nil
}

// Records returns a copy of the original collection in construction
// order.
func (e *Engine) Records() []model.Record {
	return cloned(e.records)
}

// WorkingSet returns a copy of the current working set: the output of the
// most recent filter operation, or the full collection before any filter
// ran.
func (e *Engine) WorkingSet() []model.Record {
	return cloned(e.working)
}

// ResetFilters restores the working set to the full collection.
func (e *Engine) ResetFilters() {
	e.working = e.records
}

// Len returns the number of records in the collection.
func (e *Engine) Len() int {
	return len(e.records)
}

// cloned returns a copy that callers may reorder or truncate without
// affecting engine state. Empty results are non-nil so they serialize
// as JSON arrays.
func cloned(records []model.Record) []model.Record {
	if len(records) == 0 {
		return []model.Record{}
	}
	return slices.Clone(records)
}
