package bookdex

import (
	"fmt"
	"log/slog"

	"github.com/bookdex/bookdex/cache"
	"github.com/bookdex/bookdex/model"
	"github.com/bookdex/bookdex/suggest"
)

const (
	// DefaultMaxResults caps the result list of a general search.
	DefaultMaxResults = 100

	// DefaultFuzzyThreshold is the minimum similarity score a record must
	// reach to appear in fuzzy search results.
	DefaultFuzzyThreshold = 0.6
)

type options struct {
	caseSensitive    bool
	fuzzyEnabled     bool
	maxResults       int
	searchFields     []model.Field
	cacheEnabled     bool
	cacheSize        int
	historyMaxSize   int
	fuzzyThreshold   float64
	stopwords        []string
	separators       string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Engine construction behavior.
type Option func(*options)

// WithCaseSensitive makes substring matching preserve case. Matching is
// case-insensitive by default.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(o *options) {
		o.caseSensitive = caseSensitive
	}
}

// WithFuzzySearch records whether callers intend to use fuzzy matching.
// The flag is advisory: FuzzySearch itself always runs. It defaults to
// true.
func WithFuzzySearch(enabled bool) Option {
	return func(o *options) {
		o.fuzzyEnabled = enabled
	}
}

// WithMaxResults bounds the result list of a general search.
// Defaults to DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(o *options) {
		o.maxResults = n
	}
}

// WithSearchFields configures the fields a general search runs against.
// Defaults to title, author, publisher, category and tags.
//
// Example:
//
//	e, _ := bookdex.New(records, bookdex.WithSearchFields(model.FieldTitle, model.FieldISBN))
func WithSearchFields(fields ...model.Field) Option {
	return func(o *options) {
		o.searchFields = fields
	}
}

// WithCacheEnabled toggles the query result cache. Enabled by default.
func WithCacheEnabled(enabled bool) Option {
	return func(o *options) {
		o.cacheEnabled = enabled
	}
}

// WithCacheSize bounds the number of cached queries.
// Defaults to cache.DefaultCapacity.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithHistoryMaxSize bounds the search history.
// Defaults to suggest.DefaultHistorySize.
func WithHistoryMaxSize(n int) Option {
	return func(o *options) {
		o.historyMaxSize = n
	}
}

// WithFuzzyThreshold sets the minimum similarity score for fuzzy search
// results, in [0,1]. Defaults to DefaultFuzzyThreshold.
func WithFuzzyThreshold(threshold float64) Option {
	return func(o *options) {
		o.fuzzyThreshold = threshold
	}
}

// WithStopwords replaces the default stop-word list. Calling it with no
// words disables stop-word removal entirely.
func WithStopwords(words ...string) Option {
	return func(o *options) {
		o.stopwords = append([]string{}, words...)
	}
}

// WithSeparators replaces the default token separator set. The empty
// string selects the default set.
func WithSeparators(separators string) Option {
	return func(o *options) {
		o.separators = separators
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. If nil is passed, metrics collection is disabled.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bookdex.BasicMetricsCollector{}
//	e, _ := bookdex.New(records, bookdex.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// If nil is passed, logging is disabled.
//
// Example with JSON logging:
//
//	logger := bookdex.NewJSONLogger(slog.LevelInfo)
//	e, _ := bookdex.New(records, bookdex.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		fuzzyEnabled:     true,
		maxResults:       DefaultMaxResults,
		searchFields:     model.DefaultSearchFields(),
		cacheEnabled:     true,
		cacheSize:        cache.DefaultCapacity,
		historyMaxSize:   suggest.DefaultHistorySize,
		fuzzyThreshold:   DefaultFuzzyThreshold,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) validate() error {
	if o.maxResults <= 0 {
		return &ErrInvalidOption{
			Option: "WithMaxResults",
			Reason: fmt.Sprintf("must be positive, got %d", o.maxResults),
			cause:  ErrInvalidArgument,
		}
	}
	if o.cacheSize <= 0 {
		return &ErrInvalidOption{
			Option: "WithCacheSize",
			Reason: fmt.Sprintf("must be positive, got %d", o.cacheSize),
			cause:  ErrInvalidArgument,
		}
	}
	if o.historyMaxSize <= 0 {
		return &ErrInvalidOption{
			Option: "WithHistoryMaxSize",
			Reason: fmt.Sprintf("must be positive, got %d", o.historyMaxSize),
			cause:  ErrInvalidArgument,
		}
	}
	if o.fuzzyThreshold < 0 || o.fuzzyThreshold > 1 {
		return &ErrInvalidOption{
			Option: "WithFuzzyThreshold",
			Reason: fmt.Sprintf("must be in [0,1], got %v", o.fuzzyThreshold),
			cause:  ErrInvalidArgument,
		}
	}
	if len(o.searchFields) == 0 {
		return &ErrInvalidOption{
			Option: "WithSearchFields",
			Reason: "at least one field required",
			cause:  ErrInvalidArgument,
		}
	}
	for _, f := range o.searchFields {
		if !f.Searchable() {
			return &ErrInvalidOption{
				Option: "WithSearchFields",
				Reason: fmt.Sprintf("field %s is not searchable", f),
				cause:  ErrInvalidArgument,
			}
		}
	}
	return nil
}
