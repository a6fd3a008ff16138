package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookdex.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
case_sensitive = true
max_results = 25
search_fields = ["title", "author"]
cache_size = 64
fuzzy_threshold = 0.4
stopwords = []
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.CaseSensitive)
	assert.True(t, *cfg.CaseSensitive)
	require.NotNil(t, cfg.MaxResults)
	assert.Equal(t, 25, *cfg.MaxResults)
	assert.Equal(t, []string{"title", "author"}, cfg.SearchFields)
	require.NotNil(t, cfg.CacheSize)
	assert.Equal(t, 64, *cfg.CacheSize)
	require.NotNil(t, cfg.FuzzyThreshold)
	assert.InDelta(t, 0.4, *cfg.FuzzyThreshold, 1e-9)

	// An explicit empty list is distinct from an absent key.
	assert.NotNil(t, cfg.Stopwords)
	assert.Empty(t, cfg.Stopwords)
	assert.Nil(t, cfg.CacheEnabled)
	assert.Nil(t, cfg.Separators)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestConfigOptions(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		opts, err := (&Config{}).Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("AllSet", func(t *testing.T) {
		yes := true
		n := 5
		threshold := 0.3
		seps := " "
		cfg := &Config{
			CaseSensitive:  &yes,
			FuzzySearch:    &yes,
			MaxResults:     &n,
			SearchFields:   []string{"title"},
			CacheEnabled:   &yes,
			CacheSize:      &n,
			HistorySize:    &n,
			FuzzyThreshold: &threshold,
			Stopwords:      []string{"the"},
			Separators:     &seps,
		}

		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Len(t, opts, 10)
	})

	t.Run("UnknownSearchField", func(t *testing.T) {
		cfg := &Config{SearchFields: []string{"wordcount"}}
		_, err := cfg.Options()
		assert.ErrorContains(t, err, "unknown field")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("INFO"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("chatty"))
}
