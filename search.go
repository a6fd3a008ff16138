package bookdex

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/bookdex/bookdex/index"
	"github.com/bookdex/bookdex/model"
	"github.com/bookdex/bookdex/similarity"
)

// Search runs a substring query across the configured search fields,
// OR-combined: a record matches when any field contains the query. Results
// are deduplicated by record ID, kept in collection order and truncated to
// the configured maximum.
//
// An empty query returns the full collection, bypassing the cache, the
// history and the statistics; clearing a search box shows everything.
// Otherwise the result cache is consulted first; on a miss the computed
// result is cached and the query appended to the search history.
func (e *Engine) Search(query string) []model.Record {
	if strings.TrimSpace(query) == "" {
		return e.Records()
	}

	start := time.Now()
	if e.cache != nil {
		if results, ok := e.cache.Get(query); ok {
			elapsed := time.Since(start)
			e.stats.record(elapsed, len(results))
			e.stats.cacheHits++
			e.metrics.RecordCacheHit()
			e.metrics.RecordSearch("search", len(results), elapsed)
			e.logger.LogSearch("search", query, len(results), true, elapsed)
			return results
		}
		e.metrics.RecordCacheMiss()
	}

	results := e.match(e.analyzer.Normalize(query), e.opts.searchFields, e.opts.maxResults)

	if e.cache != nil {
		before := e.cache.Evictions()
		e.cache.Put(query, results)
		if evicted := e.cache.Evictions() - before; evicted > 0 {
			e.metrics.RecordEviction(int(evicted))
		}
	}
	e.history.Add(query)

	elapsed := time.Since(start)
	e.stats.record(elapsed, len(results))
	e.metrics.RecordSearch("search", len(results), elapsed)
	e.logger.LogSearch("search", query, len(results), false, elapsed)
	return results
}

// SearchByField runs a substring query against a single field. An empty
// query returns the full collection. Field searches are not cached, not
// recorded in history and not truncated.
func (e *Engine) SearchByField(field model.Field, query string) []model.Record {
	if strings.TrimSpace(query) == "" {
		return e.Records()
	}

	start := time.Now()
	results := e.match(e.analyzer.Normalize(query), []model.Field{field}, 0)
	elapsed := time.Since(start)
	e.metrics.RecordSearch("field", len(results), elapsed)
	e.logger.LogSearch("field", query, len(results), false, elapsed)
	return results
}

// SearchByTitle is shorthand for SearchByField on the title field.
func (e *Engine) SearchByTitle(query string) []model.Record {
	return e.SearchByField(model.FieldTitle, query)
}

// SearchByAuthor is shorthand for SearchByField on the author field.
func (e *Engine) SearchByAuthor(query string) []model.Record {
	return e.SearchByField(model.FieldAuthor, query)
}

// SearchByPublisher is shorthand for SearchByField on the publisher field.
func (e *Engine) SearchByPublisher(query string) []model.Record {
	return e.SearchByField(model.FieldPublisher, query)
}

// MultiKeywordSearch unions the general search results of each keyword,
// deduplicated by record ID, preserving first-seen order. Every keyword
// passes through Search on its own, so each one is cached and recorded
// individually; the union is not truncated further.
func (e *Engine) MultiKeywordSearch(keywords []string) []model.Record {
	start := time.Now()
	seen := make(map[string]struct{})
	out := make([]model.Record, 0)
	for _, k := range keywords {
		for _, rec := range e.Search(k) {
			if _, dup := seen[rec.ID]; dup {
				continue
			}
			seen[rec.ID] = struct{}{}
			out = append(out, rec)
		}
	}
	e.logger.LogSearch("keywords", strings.Join(keywords, " "), len(out), false, time.Since(start))
	return out
}

// RegexSearch tests pattern against each configured field's raw value,
// tags individually; a record matches when any tested value matches. A
// nil pattern returns the full collection.
func (e *Engine) RegexSearch(pattern *regexp.Regexp) []model.Record {
	if pattern == nil {
		return e.Records()
	}

	start := time.Now()
	out := make([]model.Record, 0)
	for _, rec := range e.records {
		if regexMatches(rec, e.opts.searchFields, pattern) {
			out = append(out, rec)
		}
	}
	elapsed := time.Since(start)
	e.metrics.RecordSearch("regex", len(out), elapsed)
	e.logger.LogSearch("regex", pattern.String(), len(out), false, elapsed)
	return out
}

// FuzzySearch scores each record by the maximum similarity between the
// query and each configured field value, tags individually, and retains
// records meeting the similarity threshold, ordered by descending score
// with ties in collection order. Results are not cached, bypass history
// and are not truncated.
//
// The scan is not index-accelerated; its cost grows with the collection
// size and the compared string lengths. Prefer Search or RegexSearch when
// latency matters at scale.
func (e *Engine) FuzzySearch(query string) []model.Record {
	if strings.TrimSpace(query) == "" {
		return e.Records()
	}

	start := time.Now()
	needle := e.analyzer.Normalize(query)

	type scored struct {
		rec   model.Record
		score float64
	}
	matched := make([]scored, 0)
	for _, rec := range e.records {
		if s := e.fuzzyScore(rec, needle); s >= e.opts.fuzzyThreshold {
			matched = append(matched, scored{rec: rec, score: s})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]model.Record, len(matched))
	for i, m := range matched {
		out[i] = m.rec
	}
	elapsed := time.Since(start)
	e.metrics.RecordSearch("fuzzy", len(out), elapsed)
	e.logger.LogSearch("fuzzy", query, len(out), false, elapsed)
	return out
}

// match collects the records whose fields contain needle, in collection
// order, stopping at limit when limit is positive.
func (e *Engine) match(needle string, fields []model.Field, limit int) []model.Record {
	if e.indexable(needle) {
		return e.indexMatch(needle, fields, limit)
	}
	return e.scanMatch(needle, fields, limit)
}

// indexable reports whether the vocabulary scan can answer needle. A
// needle containing a separator can cross token boundaries, and one
// occurring inside a stop word can match text the index dropped; both
// fall back to the record scan.
func (e *Engine) indexable(needle string) bool {
	return !e.analyzer.ContainsSeparator(needle) && !e.analyzer.WithinStopword(needle)
}

func (e *Engine) indexMatch(needle string, fields []model.Field, limit int) []model.Record {
	acc := roaring.New()
	for _, f := range fields {
		acc.Or(e.index.MatchSubstring(f, needle))
	}

	n := int(acc.GetCardinality())
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.Record, 0, n)
	for pos := range index.Positions(acc) {
		out = append(out, e.records[pos])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (e *Engine) scanMatch(needle string, fields []model.Field, limit int) []model.Record {
	out := make([]model.Record, 0)
	for _, rec := range e.records {
		if !e.recordContains(rec, fields, needle) {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// recordContains tests needle against each field's normalized value, tags
// per tag.
func (e *Engine) recordContains(rec model.Record, fields []model.Field, needle string) bool {
	for _, f := range fields {
		if f == model.FieldTags {
			for _, tag := range rec.Tags {
				if strings.Contains(e.analyzer.Normalize(tag), needle) {
					return true
				}
			}
			continue
		}
		v, ok := rec.Text(f)
		if !ok || v == "" {
			continue
		}
		if strings.Contains(e.analyzer.Normalize(v), needle) {
			return true
		}
	}
	return false
}

func regexMatches(rec model.Record, fields []model.Field, pattern *regexp.Regexp) bool {
	for _, f := range fields {
		if f == model.FieldTags {
			for _, tag := range rec.Tags {
				if pattern.MatchString(tag) {
					return true
				}
			}
			continue
		}
		v, ok := rec.Text(f)
		if !ok || v == "" {
			continue
		}
		if pattern.MatchString(v) {
			return true
		}
	}
	return false
}

func (e *Engine) fuzzyScore(rec model.Record, needle string) float64 {
	best := 0.0
	for _, f := range e.opts.searchFields {
		if f == model.FieldTags {
			for _, tag := range rec.Tags {
				if s := similarity.Score(needle, e.analyzer.Normalize(tag)); s > best {
					best = s
				}
			}
			continue
		}
		v, ok := rec.Text(f)
		if !ok || v == "" {
			continue
		}
		if s := similarity.Score(needle, e.analyzer.Normalize(v)); s > best {
			best = s
		}
	}
	return best
}
