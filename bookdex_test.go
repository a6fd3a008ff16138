package bookdex

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bookdex/bookdex/cache"
	"github.com/bookdex/bookdex/model"
	"github.com/bookdex/bookdex/testutil"
)

// TestMain verifies the index builder's worker goroutines never outlive
// construction.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestEngine(t *testing.T, optFns ...Option) *Engine {
	t.Helper()
	e, err := New(testutil.Library(), optFns...)
	require.NoError(t, err)
	return e
}

func ids(records []model.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("EmptyID", func(t *testing.T) {
		_, err := New([]model.Record{
			{ID: "1", Title: "Dune"},
			{Title: "Nameless"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		var rerr *ErrInvalidRecord
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, 1, rerr.Index)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := New([]model.Record{
			{ID: "1", Title: "Dune"},
			{ID: "1", Title: "Dune again"},
		})
		require.Error(t, err)

		var rerr *ErrInvalidRecord
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "1", rerr.ID)
		assert.Equal(t, 1, rerr.Index)
	})

	t.Run("NoRecords", func(t *testing.T) {
		e, err := New(nil)
		require.NoError(t, err)
		assert.Zero(t, e.Len())
		assert.Empty(t, e.Search("dune"))
		assert.NotNil(t, e.Search(""))
	})

	t.Run("NilOptionSkipped", func(t *testing.T) {
		_, err := New(testutil.Library(), nil, WithMaxResults(10))
		require.NoError(t, err)
	})

	t.Run("InputNotRetained", func(t *testing.T) {
		records := testutil.Library()
		e, err := New(records)
		require.NoError(t, err)

		records[0].Title = "Mutated"
		assert.Equal(t, "Dune", e.Records()[0].Title)
		assert.Equal(t, []string{"1", "2"}, ids(e.Search("dune")))
	})
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name   string
		option Option
	}{
		{name: "ZeroMaxResults", option: WithMaxResults(0)},
		{name: "NegativeCacheSize", option: WithCacheSize(-1)},
		{name: "ZeroHistorySize", option: WithHistoryMaxSize(0)},
		{name: "ThresholdAboveOne", option: WithFuzzyThreshold(1.5)},
		{name: "NegativeThreshold", option: WithFuzzyThreshold(-0.1)},
		{name: "NoSearchFields", option: WithSearchFields()},
		{name: "NumericSearchField", option: WithSearchFields(model.FieldProgress)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testutil.Library(), tt.option)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var oerr *ErrInvalidOption
			assert.ErrorAs(t, err, &oerr)
		})
	}
}

func TestPerformanceStats(t *testing.T) {
	e := newTestEngine(t)

	before := e.PerformanceStats()
	assert.Zero(t, before.TotalSearches)
	assert.Equal(t, 7, before.RecordCount)
	assert.Positive(t, before.IndexedTokens)
	assert.NotZero(t, before.IndexFingerprint)
	assert.Equal(t, cache.DefaultCapacity, before.CacheCapacity)

	e.Search("dune")  // 2 results, miss
	e.Search("scifi") // 4 results, miss
	e.Search("dune")  // 2 results, hit

	s := e.PerformanceStats()
	assert.EqualValues(t, 3, s.TotalSearches)
	assert.EqualValues(t, 8, s.TotalResults)
	assert.EqualValues(t, 1, s.CacheHits)
	assert.InDelta(t, 1.0/3.0, s.CacheHitRate, 1e-9)
	assert.Equal(t, 2, s.CacheSize)
	assert.Equal(t, 2, s.HistorySize)

	e.ResetStats()
	s = e.PerformanceStats()
	assert.Zero(t, s.TotalSearches)
	assert.Zero(t, s.CacheHitRate)
	assert.Equal(t, 2, s.CacheSize, "reset keeps the cache")

	e.ClearCache()
	s = e.PerformanceStats()
	assert.Zero(t, s.CacheSize)
	assert.Equal(t, 2, s.HistorySize, "clearing the cache keeps the history")
}

func TestFingerprintStable(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)
	assert.Equal(t, a.PerformanceStats().IndexFingerprint, b.PerformanceStats().IndexFingerprint)

	c, err := New(testutil.Library()[:3])
	require.NoError(t, err)
	assert.NotEqual(t, a.PerformanceStats().IndexFingerprint, c.PerformanceStats().IndexFingerprint)
}

func TestMetricsCollection(t *testing.T) {
	mc := &BasicMetricsCollector{}
	e := newTestEngine(t, WithMetricsCollector(mc), WithCacheSize(4))

	e.Search("dune")  // miss
	e.Search("dune")  // hit
	e.SearchByTitle("hobbit")
	e.FuzzySearch("Dunne")
	e.RegexSearch(regexp.MustCompile(`^Dune`))
	e.FilterByCategory("Fantasy")

	s := mc.GetStats()
	assert.EqualValues(t, 5, s.SearchCount)
	assert.EqualValues(t, 1, s.CacheHits)
	assert.EqualValues(t, 1, s.CacheMisses)
	assert.InDelta(t, 0.5, s.CacheHitRate, 1e-12)
	assert.EqualValues(t, 1, s.FilterCount)
	assert.EqualValues(t, 2, s.FilterMatched)
	assert.Positive(t, s.SearchResults)

	// Distinct queries overflow the four-entry cache.
	for _, q := range []string{"q1", "q2", "q3", "q4"} {
		e.Search(q)
	}
	assert.Positive(t, mc.GetStats().Evictions)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, translateError(plain))
}
