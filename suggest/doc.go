// Package suggest implements search history and autocomplete candidates.
//
// # History
//
// History keeps past raw queries most recent first, bounded, with exact
// deduplication: re-adding an existing query moves it to the front.
//
// # Suggestions
//
// Suggest draws candidates containing the partial input from the history
// first, then from configured field values and tags, capped at ten unique
// entries. Instant is the as-you-type variant: smaller field set (title,
// author, category, tags), no history, capped at eight, with candidates
// ranked by fuzzy relevance so the cap keeps the best completions rather
// than the first ones encountered.
//
// Both match case-insensitively regardless of the engine's configured
// case sensitivity.
package suggest
