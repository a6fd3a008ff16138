package bookdex

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bookdex-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs index construction at the end of New.
func (l *Logger) LogBuild(records, tokens int, fingerprint uint64, duration time.Duration) {
	l.Info("index built",
		"records", records,
		"tokens", tokens,
		"fingerprint", fingerprint,
		"duration", duration,
	)
}

// LogSearch logs one query operation. mode names the query kind
// (search, field, fuzzy, regex, keywords).
func (l *Logger) LogSearch(mode, query string, results int, cached bool, duration time.Duration) {
	l.Debug("search completed",
		"mode", mode,
		"query", query,
		"results", results,
		"cached", cached,
		"duration", duration,
	)
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(kind string, matched int, err error) {
	if err != nil {
		l.Error("filter failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.Debug("filter completed",
			"kind", kind,
			"matched", matched,
		)
	}
}

// LogSort logs a sort over the working set.
func (l *Logger) LogSort(field, direction string, count int) {
	l.Debug("sort completed",
		"field", field,
		"direction", direction,
		"count", count,
	)
}

// LogSuggest logs a suggestion lookup.
func (l *Logger) LogSuggest(kind, partial string, results int) {
	l.Debug("suggestions computed",
		"kind", kind,
		"partial", partial,
		"results", results,
	)
}
