package bookdex

import (
	"strings"

	"github.com/bookdex/bookdex/filter"
	"github.com/bookdex/bookdex/model"
)

// Filter operations are independent and composable: each one runs over
// the ORIGINAL collection, never over a previous filter's output, and
// installs its result as the working set SortBy operates on. Use
// ApplyFilters to combine criteria conjunctively in one pass.

// FilterByCategory returns the records whose category equals value
// exactly, and replaces the working set.
func (e *Engine) FilterByCategory(value string) []model.Record {
	out := make([]model.Record, 0)
	for _, rec := range e.records {
		if rec.Category == value {
			out = append(out, rec)
		}
	}
	return e.replaceWorking("category", out)
}

// FilterByStatus returns the records whose status equals value exactly,
// and replaces the working set.
func (e *Engine) FilterByStatus(value string) []model.Record {
	out := make([]model.Record, 0)
	for _, rec := range e.records {
		if rec.Status == value {
			out = append(out, rec)
		}
	}
	return e.replaceWorking("status", out)
}

// FilterByProgressRange returns the records whose progress lies in
// [min, max], bounds inclusive, and replaces the working set. Missing
// progress counts as 0. An inverted range fails with ErrInvalidRange and
// leaves the working set untouched.
func (e *Engine) FilterByProgressRange(min, max float64) ([]model.Record, error) {
	out, err := filter.Apply(e.records, filter.Criteria{
		MinProgress: &min,
		MaxProgress: &max,
	})
	if err != nil {
		err = translateError(err)
		e.logger.LogFilter("progress", 0, err)
		return nil, err
	}
	return e.replaceWorking("progress", out), nil
}

// FilterByDateRange returns the records whose publish date falls in
// [start, end], bounds inclusive, and replaces the working set. Records
// with missing or unparseable dates are excluded, and an empty or
// unparseable bound matches nothing.
func (e *Engine) FilterByDateRange(start, end string) []model.Record {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return e.replaceWorking("date", nil)
	}
	// Compile can only fail on progress bounds.
	out, _ := filter.Apply(e.records, filter.Criteria{
		StartDate: start,
		EndDate:   end,
	})
	return e.replaceWorking("date", out)
}

// FilterByTags returns the records carrying at least one of the supplied
// tags, compared verbatim, and replaces the working set. An empty tag
// list overlaps nothing and yields an empty result.
func (e *Engine) FilterByTags(tags []string) []model.Record {
	if len(tags) == 0 {
		return e.replaceWorking("tags", nil)
	}
	// Compile can only fail on progress bounds.
	out, _ := filter.Apply(e.records, filter.Criteria{Tags: tags})
	return e.replaceWorking("tags", out)
}

// ApplyFilters applies every supplied criterion conjunctively in a single
// pass over the original collection and replaces the working set with the
// result. Zero-valued criteria are ignored; see filter.Criteria.
func (e *Engine) ApplyFilters(c filter.Criteria) ([]model.Record, error) {
	out, err := filter.Apply(e.records, c)
	if err != nil {
		err = translateError(err)
		e.logger.LogFilter("combined", 0, err)
		return nil, err
	}
	return e.replaceWorking("combined", out), nil
}

// SortBy stably sorts the current working set by the named field, keeps
// the sorted order as the new working set, and returns it. Dates compare
// as parsed values, progress and rating as numbers, everything else as
// case-insensitive strings; missing values sort first ascending. An
// unknown field name leaves the working set unchanged.
func (e *Engine) SortBy(field string, dir model.Direction) []model.Record {
	f, err := model.ParseField(field)
	if err != nil {
		e.logger.Warn("sort skipped", "field", field, "error", err)
		return cloned(e.working)
	}

	e.working = filter.Sort(e.working, f, dir)
	e.logger.LogSort(f.String(), dir.String(), len(e.working))
	return cloned(e.working)
}

// replaceWorking installs records as the new working set and hands the
// caller a copy.
func (e *Engine) replaceWorking(kind string, records []model.Record) []model.Record {
	e.working = records
	e.metrics.RecordFilter(kind, len(records))
	e.logger.LogFilter(kind, len(records), nil)
	return cloned(records)
}
