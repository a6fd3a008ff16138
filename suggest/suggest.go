package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bookdex/bookdex/analysis"
	"github.com/bookdex/bookdex/model"
)

const (
	// DefaultLimit caps regular suggestion lists.
	DefaultLimit = 10
	// DefaultInstantLimit caps the latency-oriented instant variant.
	DefaultInstantLimit = 8
)

// Suggester produces autocomplete candidates for partial queries from the
// search history and from record field values. Matching is always
// case-insensitive, independent of the engine's case sensitivity.
type Suggester struct {
	records  []model.Record
	fields   []model.Field
	analyzer *analysis.Analyzer
	history  *History
}

// New creates a Suggester over records. fields is the configured
// search-field set candidates are drawn from; history may serve past
// queries as additional candidates.
func New(records []model.Record, fields []model.Field, a *analysis.Analyzer, h *History) *Suggester {
	return &Suggester{
		records:  records,
		fields:   fields,
		analyzer: a,
		history:  h,
	}
}

// Suggest returns up to DefaultLimit unique candidates containing partial,
// drawn first from history entries and then from configured field values
// and tags. An empty partial yields nothing.
func (s *Suggester) Suggest(partial string) []string {
	needle := s.analyzer.Fold(partial)
	if needle == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(candidate string) bool {
		if candidate == "" {
			return true
		}
		if _, dup := seen[candidate]; dup {
			return true
		}
		if !strings.Contains(s.analyzer.Fold(candidate), needle) {
			return true
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
		return len(out) < DefaultLimit
	}

	for _, q := range s.history.Entries() {
		if !add(q) {
			return out
		}
	}
	for _, rec := range s.records {
		for _, f := range s.fields {
			if f == model.FieldTags {
				for _, tag := range rec.Tags {
					if !add(tag) {
						return out
					}
				}
				continue
			}
			v, _ := rec.Text(f)
			if !add(v) {
				return out
			}
		}
	}
	return out
}

// Instant returns up to DefaultInstantLimit candidates for as-you-type
// completion. It is narrower than Suggest: only title, author, category
// and tag values are considered and history is bypassed. Candidates are
// ordered by fuzzy match relevance, so the best completions survive the
// tighter cap.
func (s *Suggester) Instant(partial string) []string {
	needle := s.analyzer.Fold(partial)
	if needle == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []string
	var folded []string
	consider := func(v string) {
		if v == "" {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		f := s.analyzer.Fold(v)
		if !strings.Contains(f, needle) {
			return
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
		folded = append(folded, f)
	}

	for _, rec := range s.records {
		consider(rec.Title)
		consider(rec.Author)
		consider(rec.Category)
		for _, tag := range rec.Tags {
			consider(tag)
		}
	}

	// Every candidate contains the needle, so each one survives the fuzzy
	// pass; the pass only ranks.
	matches := fuzzy.Find(needle, folded)
	out := make([]string, 0, min(len(matches), DefaultInstantLimit))
	for _, m := range matches {
		out = append(out, candidates[m.Index])
		if len(out) == DefaultInstantLimit {
			break
		}
	}
	return out
}
