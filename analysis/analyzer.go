package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparators lists the characters tokenization splits on, in
// addition to Unicode whitespace: Western punctuation and brackets plus
// their CJK counterparts.
const DefaultSeparators = ",.;:!?'\"()[]{}<>/\\|@#$%^&*-_+=~`" +
	"，。；：！？、·「」『』（）【】《》〈〉…～"

// DefaultStopwords returns the default stop-word list: common English
// articles, conjunctions and prepositions plus common Chinese function
// words. Tokens matching an entry are dropped during tokenization.
func DefaultStopwords() []string {
	return []string{
		// English
		"a", "an", "the",
		"and", "or", "but", "nor", "so", "yet",
		"of", "to", "in", "on", "at", "by", "for", "with", "from", "as", "into", "about",
		// Chinese
		"的", "了", "是", "在", "和", "與", "及", "或", "而", "就", "都",
		"之", "其", "也", "這", "那", "個", "們", "為", "於", "不", "沒有",
	}
}

// Config holds the static analysis data injected at construction. Nil
// Stopwords selects the default list; an empty non-nil slice disables
// stop-word removal. An empty Separators string selects the default set.
type Config struct {
	CaseSensitive bool
	Stopwords     []string
	Separators    string
}

// Analyzer turns raw field text and queries into canonical form. It is
// pure (no side effects) but carries internal transform buffers, so one
// Analyzer must not be shared between goroutines.
type Analyzer struct {
	caseSensitive bool
	stopwords     map[string]struct{}
	separators    map[rune]struct{}
	punct         runes.Transformer
	folder        cases.Caser
}

// New creates an Analyzer from cfg.
func New(cfg Config) *Analyzer {
	words := cfg.Stopwords
	if words == nil {
		words = DefaultStopwords()
	}
	stopwords := make(map[string]struct{}, len(words))
	for _, w := range words {
		stopwords[w] = struct{}{}
	}

	seps := cfg.Separators
	if seps == "" {
		seps = DefaultSeparators
	}
	separators := make(map[rune]struct{}, len(seps))
	for _, r := range seps {
		separators[r] = struct{}{}
	}

	return &Analyzer{
		caseSensitive: cfg.CaseSensitive,
		stopwords:     stopwords,
		separators:    separators,
		punct:         runes.Map(foldPunct),
		folder:        cases.Fold(),
	}
}

// Clone returns an Analyzer with the same configuration and its own
// transform buffers, for use on another goroutine. The underlying
// stop-word and separator tables are shared; they are read-only after
// construction.
func (a *Analyzer) Clone() *Analyzer {
	return &Analyzer{
		caseSensitive: a.caseSensitive,
		stopwords:     a.stopwords,
		separators:    a.separators,
		punct:         runes.Map(foldPunct),
		folder:        cases.Fold(),
	}
}

// foldPunct collapses typographic quote and dash variants to their ASCII
// equivalents.
func foldPunct(r rune) rune {
	switch r {
	case '“', '”', '„', '‟', '«', '»':
		return '"'
	case '‘', '’', '‚', '‛', '‹', '›':
		return '\''
	case '‐', '‑', '–', '—', '―', '−':
		return '-'
	default:
		return r
	}
}

// Normalize returns the canonical form of s: trimmed, NFC-composed,
// typographic quotes and dashes folded to ASCII, and case-folded unless
// the Analyzer is case sensitive.
func (a *Analyzer) Normalize(s string) string {
	return a.normalize(s, !a.caseSensitive)
}

// Fold returns the canonical form of s with unconditional case folding,
// for callers that match case-insensitively regardless of configuration.
func (a *Analyzer) Fold(s string) string {
	return a.normalize(s, true)
}

func (a *Analyzer) normalize(s string, fold bool) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = a.punct.String(s)
	if fold {
		s = a.folder.String(s)
	}
	return s
}

// Tokenize normalizes s, splits it on the separator set, and drops empty
// tokens and stop words. The result is nil when nothing survives.
func (a *Analyzer) Tokenize(s string) []string {
	n := a.Normalize(s)
	if n == "" {
		return nil
	}
	parts := strings.FieldsFunc(n, a.IsSeparator)
	var tokens []string
	for _, p := range parts {
		if _, stop := a.stopwords[p]; stop {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// IsSeparator reports whether r splits tokens.
func (a *Analyzer) IsSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	_, ok := a.separators[r]
	return ok
}

// ContainsSeparator reports whether any rune of s is a separator.
func (a *Analyzer) ContainsSeparator(s string) bool {
	return strings.ContainsFunc(s, a.IsSeparator)
}

// WithinStopword reports whether s occurs as a substring of any configured
// stop word. Such needles can match text the token index dropped.
func (a *Analyzer) WithinStopword(s string) bool {
	for w := range a.stopwords {
		if strings.Contains(w, s) {
			return true
		}
	}
	return false
}

// CaseSensitive reports whether normalization preserves case.
func (a *Analyzer) CaseSensitive() bool {
	return a.caseSensitive
}
