// Package model defines core types used throughout bookdex.
//
// # Identity Types
//
//   - Position: Dense, collection-local record offset (uint32)
//   - Field: Closed enum over record attributes
//   - Direction: Sort order (ascending/descending)
//
// # Data Types
//
//   - Record: Book metadata with optional fields (zero values mean absent)
//
// # Field Dispatch
//
// Field-driven operations (search by field, sort by field) switch over the
// Field enum. External names from flags or config files are resolved with
// ParseField and ParseDirection:
//
//	f, err := model.ParseField("publishDate")
//	if err != nil {
//	    // *model.ErrUnknownField
//	}
package model
