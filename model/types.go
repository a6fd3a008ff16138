package model

import (
	"strings"
)

// Position is a dense, collection-local identifier for a record.
// It is the record's offset in the collection snapshot passed at
// construction and is stable for the lifetime of an engine instance.
type Position uint32

// Record represents a single book in the collection. Records are supplied
// by the caller at construction; the engine holds them read-only and never
// mutates them. Absent fields keep their zero values and are treated as
// empty (or zero) for matching and sorting.
type Record struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ISBN        string   `json:"isbn,omitempty"`
	Status      string   `json:"status,omitempty"`
	Progress    float64  `json:"progress,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	PublishDate string   `json:"publishDate,omitempty"`
}

// Text returns the raw value of a scalar string field. The second return
// is false for fields that are not scalar strings (tags, progress, rating).
func (r Record) Text(f Field) (string, bool) {
	switch f {
	case FieldID:
		return r.ID, true
	case FieldTitle:
		return r.Title, true
	case FieldAuthor:
		return r.Author, true
	case FieldPublisher:
		return r.Publisher, true
	case FieldCategory:
		return r.Category, true
	case FieldISBN:
		return r.ISBN, true
	case FieldStatus:
		return r.Status, true
	case FieldPublishDate:
		return r.PublishDate, true
	default:
		return "", false
	}
}

// Number returns the value of a numeric field. The second return is false
// for fields that are not numeric.
func (r Record) Number(f Field) (float64, bool) {
	switch f {
	case FieldProgress:
		return r.Progress, true
	case FieldRating:
		return r.Rating, true
	default:
		return 0, false
	}
}

// SortText returns the string form of a field for ordering purposes.
// Tags collapse to their comma-joined form; missing values are "".
func (r Record) SortText(f Field) string {
	if f == FieldTags {
		return strings.Join(r.Tags, ",")
	}
	s, _ := r.Text(f)
	return s
}
