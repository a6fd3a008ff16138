package bookdex

// AddToHistory records query in the search history: any identical prior
// entry moves to the front, the bound drops the oldest excess. Empty
// queries are ignored.
func (e *Engine) AddToHistory(query string) {
	e.history.Add(query)
}

// SearchHistory returns a copy of the search history, newest first.
func (e *Engine) SearchHistory() []string {
	entries := e.history.Entries()
	if entries == nil {
		entries = []string{}
	}
	return entries
}

// ClearSearchHistory empties the search history.
func (e *Engine) ClearSearchHistory() {
	e.history.Clear()
}

// Suggestions returns up to suggest.DefaultLimit unique candidates
// containing partial, case-insensitively: history entries first, then
// values of the configured search fields and tags. An empty partial
// yields nothing.
func (e *Engine) Suggestions(partial string) []string {
	out := e.suggester.Suggest(partial)
	e.logger.LogSuggest("suggest", partial, len(out))
	if out == nil {
		out = []string{}
	}
	return out
}

// InstantSuggestions returns up to suggest.DefaultInstantLimit candidates
// for as-you-type completion, drawn from title, author, category and tag
// values only and ordered by match relevance. History is bypassed.
func (e *Engine) InstantSuggestions(partial string) []string {
	out := e.suggester.Instant(partial)
	e.logger.LogSuggest("instant", partial, len(out))
	if out == nil {
		out = []string{}
	}
	return out
}
