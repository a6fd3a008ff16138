package suggest

import (
	"slices"
)

// DefaultHistorySize bounds the history when no size is configured.
const DefaultHistorySize = 50

// History is the ordered list of past raw queries, most recent first.
// Repeating a query moves it to the front instead of adding a duplicate;
// matching is exact, not case-normalized. A History belongs to one engine
// instance and is not safe for concurrent use.
type History struct {
	max     int
	entries []string
}

// NewHistory creates a History bounded to max entries. A non-positive max
// selects DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Add records query at the front, removing any identical prior entry and
// dropping the oldest overflow. Empty queries are ignored.
func (h *History) Add(query string) {
	if query == "" {
		return
	}
	if i := slices.Index(h.entries, query); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
	}
	h.entries = slices.Insert(h.entries, 0, query)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []string {
	return slices.Clone(h.entries)
}

// Len returns the number of recorded queries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all recorded queries.
func (h *History) Clear() {
	h.entries = nil
}
