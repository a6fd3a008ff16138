package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/analysis"
	"github.com/bookdex/bookdex/model"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	records := []model.Record{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Category: "Fiction",
			Tags: []string{"Science Fiction", "classic"}, ISBN: "9780441172719", Status: "reading"},
		{ID: "2", Title: "The Hobbit", Author: "J.R.R. Tolkien",
			Tags: []string{"fantasy"}, Status: "finished"},
		{ID: "3", Title: "Dune Messiah", Author: "Frank Herbert", Status: "reading"},
	}
	return Build(records, analysis.New(analysis.Config{}))
}

func collect(t *testing.T, ix *Index, f model.Field, token string) []model.Position {
	t.Helper()
	var out []model.Position
	for pos := range Positions(ix.Lookup(f, token)) {
		out = append(out, pos)
	}
	return out
}

func TestBuild(t *testing.T) {
	ix := buildTestIndex(t)

	t.Run("tokenized text fields", func(t *testing.T) {
		assert.Equal(t, []model.Position{0, 2}, collect(t, ix, model.FieldTitle, "dune"))
		assert.Equal(t, []model.Position{1}, collect(t, ix, model.FieldAuthor, "tolkien"))
	})

	t.Run("stop words are dropped", func(t *testing.T) {
		assert.Nil(t, ix.Lookup(model.FieldTitle, "the"))
	})

	t.Run("tags indexed verbatim", func(t *testing.T) {
		assert.Equal(t, []model.Position{0}, collect(t, ix, model.FieldTags, "science fiction"))
		assert.Nil(t, ix.Lookup(model.FieldTags, "science"))
	})

	t.Run("isbn and status as single tokens", func(t *testing.T) {
		assert.Equal(t, []model.Position{0}, collect(t, ix, model.FieldISBN, "9780441172719"))
		assert.Equal(t, []model.Position{0, 2}, collect(t, ix, model.FieldStatus, "reading"))
	})

	t.Run("missing fields are skipped", func(t *testing.T) {
		assert.Nil(t, ix.Lookup(model.FieldPublisher, ""))
		assert.Zero(t, ix.MatchSubstring(model.FieldPublisher, "e").GetCardinality())
	})

	t.Run("token count", func(t *testing.T) {
		// title: dune, hobbit, messiah; author: frank, herbert, j, r, tolkien;
		// category: fiction; tags: science fiction, classic, fantasy;
		// isbn: one token; status: reading, finished.
		assert.Equal(t, 15, ix.TokenCount())
	})
}

func TestMatchSubstring(t *testing.T) {
	ix := buildTestIndex(t)

	t.Run("partial token", func(t *testing.T) {
		bm := ix.MatchSubstring(model.FieldTitle, "dun")
		var got []model.Position
		for pos := range Positions(bm) {
			got = append(got, pos)
		}
		assert.Equal(t, []model.Position{0, 2}, got)
	})

	t.Run("substring of a tag", func(t *testing.T) {
		bm := ix.MatchSubstring(model.FieldTags, "fiction")
		assert.Equal(t, uint64(1), bm.GetCardinality())
		assert.True(t, bm.Contains(0))
	})

	t.Run("no match", func(t *testing.T) {
		assert.True(t, ix.MatchSubstring(model.FieldTitle, "zzz").IsEmpty())
	})
}

func TestPositionsNilBitmap(t *testing.T) {
	for range Positions(nil) {
		t.Fatal("nil bitmap must yield nothing")
	}
}

func TestFingerprint(t *testing.T) {
	records := []model.Record{
		{ID: "1", Title: "Dune", Tags: []string{"scifi"}},
		{ID: "2", Title: "Hobbit"},
	}
	a := analysis.New(analysis.Config{})

	first := Build(records, a).Fingerprint()
	second := Build(records, a).Fingerprint()
	require.Equal(t, first, second, "same snapshot must fingerprint identically")

	changed := Build([]model.Record{
		{ID: "1", Title: "Dune", Tags: []string{"scifi"}},
		{ID: "2", Title: "Hobbit", Author: "Tolkien"},
	}, a).Fingerprint()
	assert.NotEqual(t, first, changed)
}
