package index

import (
	"encoding/binary"
	"iter"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bookdex/bookdex/analysis"
	"github.com/bookdex/bookdex/model"
)

// Index is the per-field inverted token index over one record collection
// snapshot. It is built once and never updated; it is valid only for the
// collection it was built from.
type Index struct {
	fields map[model.Field]vocabulary
}

type vocabulary map[string]*roaring.Bitmap

// Build constructs the index over records using a. Each indexed field is
// tokenized per record and every token's postings bitmap gains the record
// position; tags are indexed verbatim (normalized, one token per tag);
// ISBN and status are single normalized tokens. A record missing a field
// is skipped for that field. The per-field sub-indexes are built
// concurrently and joined before Build returns.
func Build(records []model.Record, a *analysis.Analyzer) *Index {
	ix := &Index{fields: make(map[model.Field]vocabulary, len(model.IndexedFields()))}
	for _, f := range model.IndexedFields() {
		ix.fields[f] = make(vocabulary)
	}

	var g errgroup.Group
	for _, f := range model.IndexedFields() {
		fa := a.Clone()
		g.Go(func() error {
			ix.buildField(f, records, fa)
			return nil
		})
	}
	// Field builders write disjoint maps and never fail; Wait is the join
	// point only.
	_ = g.Wait()

	return ix
}

func (ix *Index) buildField(f model.Field, records []model.Record, a *analysis.Analyzer) {
	vocab := ix.fields[f]
	for i, rec := range records {
		pos := uint32(i)
		switch f {
		case model.FieldTags:
			for _, tag := range rec.Tags {
				if t := a.Normalize(tag); t != "" {
					vocab.add(t, pos)
				}
			}
		case model.FieldISBN, model.FieldStatus:
			s, _ := rec.Text(f)
			if t := a.Normalize(s); t != "" {
				vocab.add(t, pos)
			}
		default:
			s, _ := rec.Text(f)
			for _, t := range a.Tokenize(s) {
				vocab.add(t, pos)
			}
		}
	}
}

func (v vocabulary) add(token string, pos uint32) {
	bm, ok := v[token]
	if !ok {
		bm = roaring.New()
		v[token] = bm
	}
	bm.Add(pos)
}

// Lookup returns the postings bitmap for an exact token, or nil when the
// token (or field) is not indexed. The returned bitmap is shared; callers
// must not mutate it.
func (ix *Index) Lookup(f model.Field, token string) *roaring.Bitmap {
	return ix.fields[f][token]
}

// MatchSubstring unions the postings of every vocabulary token of f that
// contains needle. The result is a fresh bitmap owned by the caller.
func (ix *Index) MatchSubstring(f model.Field, needle string) *roaring.Bitmap {
	out := roaring.New()
	for token, bm := range ix.fields[f] {
		if strings.Contains(token, needle) {
			out.Or(bm)
		}
	}
	return out
}

// TokenCount returns the number of distinct (field, token) pairs.
func (ix *Index) TokenCount() int {
	n := 0
	for _, vocab := range ix.fields {
		n += len(vocab)
	}
	return n
}

// Fingerprint returns a stable hash identifying the indexed content:
// fields, tokens and posting cardinalities in canonical order. Two builds
// over the same collection and configuration produce the same value.
func (ix *Index) Fingerprint() uint64 {
	d := xxhash.New()
	var card [8]byte
	for _, f := range model.IndexedFields() {
		vocab := ix.fields[f]
		tokens := make([]string, 0, len(vocab))
		for t := range vocab {
			tokens = append(tokens, t)
		}
		sort.Strings(tokens)

		_, _ = d.WriteString(f.String())
		_, _ = d.Write([]byte{0})
		for _, t := range tokens {
			_, _ = d.WriteString(t)
			_, _ = d.Write([]byte{0})
			binary.LittleEndian.PutUint64(card[:], vocab[t].GetCardinality())
			_, _ = d.Write(card[:])
		}
	}
	return d.Sum64()
}

// Positions iterates a postings bitmap in ascending record position order,
// which is the original collection order. A nil bitmap yields nothing.
func Positions(bm *roaring.Bitmap) iter.Seq[model.Position] {
	return func(yield func(model.Position) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(model.Position(it.Next())) {
				return
			}
		}
	}
}
