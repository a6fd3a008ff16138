package filter

import (
	"slices"
	"sort"
	"strings"

	"github.com/bookdex/bookdex/model"
)

// Sort returns a stably sorted copy of records ordered by field. Dates
// compare as parsed values (unparseable or missing dates as the zero
// time), numeric fields as float64 (missing values as 0), everything else
// as case-insensitive strings (missing values as ""). Equal keys keep
// their input order in both directions.
func Sort(records []model.Record, field model.Field, dir model.Direction) []model.Record {
	out := slices.Clone(records)
	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == model.Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(field model.Field) func(a, b model.Record) bool {
	switch field.Kind() {
	case model.KindNumeric:
		return func(a, b model.Record) bool {
			av, _ := a.Number(field)
			bv, _ := b.Number(field)
			return av < bv
		}
	case model.KindDate:
		return func(a, b model.Record) bool {
			at, _ := ParseDate(a.SortText(field))
			bt, _ := ParseDate(b.SortText(field))
			return at.Before(bt)
		}
	default:
		return func(a, b model.Record) bool {
			return strings.ToLower(a.SortText(field)) < strings.ToLower(b.SortText(field))
		}
	}
}
