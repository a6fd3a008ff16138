package filter

import (
	"fmt"
	"slices"
	"time"

	"github.com/bookdex/bookdex/model"
)

// ErrInvalidRange indicates a numeric range whose lower bound exceeds its
// upper bound.
type ErrInvalidRange struct {
	Field model.Field
	Min   float64
	Max   float64
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid %s range: min %v greater than max %v", e.Field, e.Min, e.Max)
}

// Criteria describes a conjunctive filter over the record collection.
// Zero values mean unconstrained: empty strings and nil slices are
// ignored. Progress bounds are pointers so a zero bound stays
// expressible. A non-empty date bound that does not parse makes the
// criteria match nothing, mirroring comparisons against an invalid date.
type Criteria struct {
	Category    string
	Status      string
	MinProgress *float64
	MaxProgress *float64
	StartDate   string
	EndDate     string
	Tags        []string
}

// Matcher is a compiled Criteria, ready for a single pass over records.
type Matcher struct {
	c        Criteria
	start    time.Time
	end      time.Time
	startSet bool
	endSet   bool
	badDate  bool
}

// Compile validates c and prepares a Matcher. It fails when the progress
// range is inverted.
func (c Criteria) Compile() (*Matcher, error) {
	if c.MinProgress != nil && c.MaxProgress != nil && *c.MinProgress > *c.MaxProgress {
		return nil, &ErrInvalidRange{Field: model.FieldProgress, Min: *c.MinProgress, Max: *c.MaxProgress}
	}

	m := &Matcher{c: c}
	if c.StartDate != "" {
		m.startSet = true
		start, ok := ParseDate(c.StartDate)
		m.start = start
		m.badDate = m.badDate || !ok
	}
	if c.EndDate != "" {
		m.endSet = true
		end, ok := ParseDate(c.EndDate)
		m.end = end
		m.badDate = m.badDate || !ok
	}
	return m, nil
}

// Matches reports whether rec satisfies every supplied criterion.
func (m *Matcher) Matches(rec model.Record) bool {
	c := m.c
	if c.Category != "" && rec.Category != c.Category {
		return false
	}
	if c.Status != "" && rec.Status != c.Status {
		return false
	}
	if c.MinProgress != nil && rec.Progress < *c.MinProgress {
		return false
	}
	if c.MaxProgress != nil && rec.Progress > *c.MaxProgress {
		return false
	}
	if m.startSet || m.endSet {
		if m.badDate {
			return false
		}
		d, ok := ParseDate(rec.PublishDate)
		if !ok {
			return false
		}
		if m.startSet && d.Before(m.start) {
			return false
		}
		if m.endSet && d.After(m.end) {
			return false
		}
	}
	if len(c.Tags) > 0 && !overlaps(rec.Tags, c.Tags) {
		return false
	}
	return true
}

// overlaps reports whether any wanted tag appears verbatim in have.
func overlaps(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

// Apply compiles c and returns the records matching all criteria, in one
// pass over records and preserving their order.
func Apply(records []model.Record, c Criteria) ([]model.Record, error) {
	m, err := c.Compile()
	if err != nil {
		return nil, err
	}
	var out []model.Record
	for _, rec := range records {
		if m.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}
