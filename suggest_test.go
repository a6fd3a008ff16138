package bookdex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchHistory(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("dune")
		e.AddToHistory("hobbit")
		e.AddToHistory("tolkien")
		assert.Equal(t, []string{"tolkien", "hobbit", "dune"}, e.SearchHistory())
	})

	t.Run("RepeatMovesToFront", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("dune")
		e.AddToHistory("hobbit")
		e.AddToHistory("dune")
		assert.Equal(t, []string{"dune", "hobbit"}, e.SearchHistory())
	})

	t.Run("EmptyQueryIgnored", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("")
		assert.Empty(t, e.SearchHistory())
	})

	t.Run("Bounded", func(t *testing.T) {
		e := newTestEngine(t, WithHistoryMaxSize(2))
		e.AddToHistory("first")
		e.AddToHistory("second")
		e.AddToHistory("third")
		assert.Equal(t, []string{"third", "second"}, e.SearchHistory())
	})

	t.Run("Clear", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("dune")
		e.ClearSearchHistory()

		got := e.SearchHistory()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NonNilWhenEmpty", func(t *testing.T) {
		e := newTestEngine(t)
		assert.NotNil(t, e.SearchHistory())
	})
}

func TestSuggestions(t *testing.T) {
	t.Run("HistoryBeforeFieldValues", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("dune messiah imagined")

		want := []string{"dune messiah imagined", "Dune", "Dune Messiah"}
		assert.Equal(t, want, e.Suggestions("dune"))

		// Matching is case-insensitive regardless of configuration.
		assert.Equal(t, want, e.Suggestions("DUNE"))
	})

	t.Run("SearchFeedsSuggestions", func(t *testing.T) {
		e := newTestEngine(t)
		e.Search("herbert")
		assert.Equal(t, []string{"herbert", "Frank Herbert"}, e.Suggestions("herb"))
	})

	t.Run("PublisherIncluded", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Equal(t, []string{"Putnam"}, e.Suggestions("putnam"))
	})

	t.Run("TagsDeduplicated", func(t *testing.T) {
		e := newTestEngine(t)
		// Four records carry the tag; the candidate appears once.
		assert.Equal(t, []string{"scifi"}, e.Suggestions("scifi"))
	})

	t.Run("Limit", func(t *testing.T) {
		e := newTestEngine(t)
		for i := 1; i <= 12; i++ {
			e.AddToHistory(fmt.Sprintf("q%d", i))
		}

		got := e.Suggestions("q")
		assert.Len(t, got, 10)
		assert.Equal(t, "q12", got[0])
	})

	t.Run("EmptyPartial", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.Suggestions("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NoMatch", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.Suggestions("zzzqqq")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestInstantSuggestions(t *testing.T) {
	t.Run("RankedTitles", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Equal(t, []string{"Dune", "Dune Messiah"}, e.InstantSuggestions("dune"))
	})

	t.Run("HistoryBypassed", func(t *testing.T) {
		e := newTestEngine(t)
		e.AddToHistory("dune forever")
		assert.Equal(t, []string{"Dune", "Dune Messiah"}, e.InstantSuggestions("dune"))
	})

	t.Run("PublisherExcluded", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.InstantSuggestions("putnam")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("CJK", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Equal(t, []string{"三體"}, e.InstantSuggestions("三"))
	})

	t.Run("TighterCap", func(t *testing.T) {
		e := newTestEngine(t)
		// Thirteen distinct values contain the letter; the cap keeps eight.
		assert.Len(t, e.InstantSuggestions("e"), 8)
	})

	t.Run("EmptyPartial", func(t *testing.T) {
		e := newTestEngine(t)
		got := e.InstantSuggestions("")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
