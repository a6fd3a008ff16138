// Package bookdex provides an embedded, in-memory search and filtering
// engine for book collections.
//
// The engine indexes one immutable record collection at construction and
// then answers queries indefinitely:
//
//   - Substring search across configurable fields, backed by a per-field
//     inverted token index with Roaring Bitmap postings
//   - Fuzzy search with normalized Levenshtein similarity scoring
//   - Regular-expression search over raw field values
//   - Composable filters (category, status, progress range, date range,
//     tags) and stable multi-type sorting
//   - Bounded query result cache with LRU/LFU hybrid eviction
//   - Search history, autocomplete suggestions and instant suggestions
//   - Structured logging (log/slog) and pluggable metrics collection
//
// # Quick Start
//
// Build an engine and search:
//
//	records := []model.Record{
//	    {ID: "1", Title: "Dune", Author: "Frank Herbert", Tags: []string{"scifi"}},
//	    {ID: "2", Title: "The Hobbit", Author: "J.R.R. Tolkien", Tags: []string{"fantasy"}},
//	}
//	e, err := bookdex.New(records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range e.Search("dune") {
//	    fmt.Println(rec.Title)
//	}
//
// Filter, then sort the filtered working set:
//
//	e.FilterByTags([]string{"fantasy"})
//	for _, rec := range e.SortBy("title", model.Ascending) {
//	    fmt.Println(rec.Title)
//	}
//
// # Query Modes
//
// Choose the right query for the job:
//
//   - Search / SearchByField: substring containment, index-accelerated;
//     general searches are cached and recorded in history
//   - FuzzySearch: typo-tolerant similarity ranking, full scan
//   - RegexSearch: raw-value pattern matching, full scan
//   - MultiKeywordSearch: OR-union of several general searches
//
// An empty query deliberately returns the full collection: the engine
// backs interactive search boxes, and clearing the box shows everything.
//
// # Concurrency
//
// Every operation is synchronous and runs to completion before returning.
// An Engine performs no locking; callers in concurrent contexts serialize
// access externally or use one Engine per goroutine. Construction builds
// the per-field sub-indexes in parallel but joins before New returns.
package bookdex
