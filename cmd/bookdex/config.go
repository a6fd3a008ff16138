package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bookdex/bookdex"
	"github.com/bookdex/bookdex/model"
)

// Config mirrors the engine's functional options in TOML form. Pointer
// fields distinguish an absent setting from an explicit zero value; absent
// settings keep the engine defaults.
type Config struct {
	CaseSensitive  *bool    `toml:"case_sensitive"`
	FuzzySearch    *bool    `toml:"fuzzy_search"`
	MaxResults     *int     `toml:"max_results"`
	SearchFields   []string `toml:"search_fields"`
	CacheEnabled   *bool    `toml:"cache_enabled"`
	CacheSize      *int     `toml:"cache_size"`
	HistorySize    *int     `toml:"history_size"`
	FuzzyThreshold *float64 `toml:"fuzzy_threshold"`
	Stopwords      []string `toml:"stopwords"`
	Separators     *string  `toml:"separators"`
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the configured values to engine options. An empty
// stopwords list ("stopwords = []") disables stop-word removal, matching
// the engine's own convention.
func (c *Config) Options() ([]bookdex.Option, error) {
	var opts []bookdex.Option
	if c.CaseSensitive != nil {
		opts = append(opts, bookdex.WithCaseSensitive(*c.CaseSensitive))
	}
	if c.FuzzySearch != nil {
		opts = append(opts, bookdex.WithFuzzySearch(*c.FuzzySearch))
	}
	if c.MaxResults != nil {
		opts = append(opts, bookdex.WithMaxResults(*c.MaxResults))
	}
	if len(c.SearchFields) > 0 {
		fields := make([]model.Field, 0, len(c.SearchFields))
		for _, name := range c.SearchFields {
			f, err := model.ParseField(name)
			if err != nil {
				return nil, fmt.Errorf("search_fields: %w", err)
			}
			fields = append(fields, f)
		}
		opts = append(opts, bookdex.WithSearchFields(fields...))
	}
	if c.CacheEnabled != nil {
		opts = append(opts, bookdex.WithCacheEnabled(*c.CacheEnabled))
	}
	if c.CacheSize != nil {
		opts = append(opts, bookdex.WithCacheSize(*c.CacheSize))
	}
	if c.HistorySize != nil {
		opts = append(opts, bookdex.WithHistoryMaxSize(*c.HistorySize))
	}
	if c.FuzzyThreshold != nil {
		opts = append(opts, bookdex.WithFuzzyThreshold(*c.FuzzyThreshold))
	}
	if c.Stopwords != nil {
		opts = append(opts, bookdex.WithStopwords(c.Stopwords...))
	}
	if c.Separators != nil {
		opts = append(opts, bookdex.WithSeparators(*c.Separators))
	}
	return opts, nil
}

// parseLevel maps a CLI level name to a slog level. Unknown names fall
// back to warn, the CLI's quiet default.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
