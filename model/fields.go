package model

import (
	"fmt"
	"strings"
)

// Field identifies one record attribute. Operations that take a field
// switch over this closed set instead of looking names up in a map, so an
// unsupported field is a compile-time error rather than a silent miss.
type Field uint8

const (
	FieldID Field = iota
	FieldTitle
	FieldAuthor
	FieldPublisher
	FieldCategory
	FieldTags
	FieldISBN
	FieldStatus
	FieldProgress
	FieldRating
	FieldPublishDate
)

// String returns the canonical lower-case name of the field.
func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldPublisher:
		return "publisher"
	case FieldCategory:
		return "category"
	case FieldTags:
		return "tags"
	case FieldISBN:
		return "isbn"
	case FieldStatus:
		return "status"
	case FieldProgress:
		return "progress"
	case FieldRating:
		return "rating"
	case FieldPublishDate:
		return "publishDate"
	default:
		return fmt.Sprintf("field(%d)", uint8(f))
	}
}

// Kind classifies a field for comparison purposes.
type Kind uint8

const (
	// KindText fields compare as case-insensitive strings.
	KindText Kind = iota
	// KindTags fields hold an ordered sequence of atomic strings.
	KindTags
	// KindNumeric fields compare as float64, missing values as 0.
	KindNumeric
	// KindDate fields compare as parsed dates.
	KindDate
)

// Kind returns the comparison class of the field.
func (f Field) Kind() Kind {
	switch f {
	case FieldTags:
		return KindTags
	case FieldProgress, FieldRating:
		return KindNumeric
	case FieldPublishDate:
		return KindDate
	default:
		return KindText
	}
}

// Searchable reports whether the field participates in substring search
// and is covered by the inverted index.
func (f Field) Searchable() bool {
	switch f {
	case FieldTitle, FieldAuthor, FieldPublisher, FieldCategory, FieldTags, FieldISBN, FieldStatus:
		return true
	default:
		return false
	}
}

// IndexedFields returns the fixed set of fields the inverted index covers,
// independent of the configured search-field set.
func IndexedFields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldPublisher, FieldCategory, FieldTags, FieldISBN, FieldStatus}
}

// DefaultSearchFields returns the default multi-field set general search
// queries run against.
func DefaultSearchFields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldPublisher, FieldCategory, FieldTags}
}

// ErrUnknownField indicates a field name that does not map to any record
// attribute.
type ErrUnknownField struct {
	Name string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// ParseField resolves an external field name (CLI flag, config file) to a
// Field. Matching is case-insensitive.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id":
		return FieldID, nil
	case "title":
		return FieldTitle, nil
	case "author":
		return FieldAuthor, nil
	case "publisher":
		return FieldPublisher, nil
	case "category":
		return FieldCategory, nil
	case "tags":
		return FieldTags, nil
	case "isbn":
		return FieldISBN, nil
	case "status":
		return FieldStatus, nil
	case "progress":
		return FieldProgress, nil
	case "rating":
		return FieldRating, nil
	case "publishdate", "publish_date":
		return FieldPublishDate, nil
	default:
		return 0, &ErrUnknownField{Name: name}
	}
}

// Direction selects the sort order.
type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ErrUnknownDirection indicates a direction name other than asc/desc.
type ErrUnknownDirection struct {
	Name string
}

func (e *ErrUnknownDirection) Error() string {
	return fmt.Sprintf("unknown sort direction %q", e.Name)
}

// ParseDirection resolves an external direction name. The empty string
// defaults to ascending.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, &ErrUnknownDirection{Name: name}
	}
}
