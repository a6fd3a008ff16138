package filter

import (
	"strings"
	"time"
)

// DateLayouts are the layouts ParseDate tries, in order. Record dates in
// the wild vary between dashed, slashed, partial and verbose forms.
var DateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"2006",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses a date-like record string. The second return is false
// for empty or unparseable input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
