// Package filter implements structured attribute filtering and typed
// sorting over record collections.
//
// # Criteria
//
// Criteria is a conjunctive filter: every supplied field must hold.
// Category, status and tags compare raw string values exactly; progress is
// an inclusive numeric range; dates are an inclusive range over parsed
// publish dates. Records whose publish date is missing or unparseable are
// excluded from date-constrained results.
//
// Compile validates the criteria once and returns a Matcher for a single
// pass; Apply wraps both for the common case:
//
//	out, err := filter.Apply(records, filter.Criteria{
//	    Category: "Fiction",
//	    Tags:     []string{"classic"},
//	})
//
// # Sorting
//
// Sort is stable and direction-aware, comparing by the field's kind:
// parsed dates, float64 numerics, or case-insensitive strings. Missing
// values order as zero/empty.
package filter
