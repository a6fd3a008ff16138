package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAdd(t *testing.T) {
	h := NewHistory(50)

	h.Add("dune")
	h.Add("hobbit")
	h.Add("foundation")

	assert.Equal(t, []string{"foundation", "hobbit", "dune"}, h.Entries())
}

func TestHistoryDedupMovesToFront(t *testing.T) {
	h := NewHistory(50)

	h.Add("dune")
	h.Add("hobbit")
	h.Add("dune")

	require.Equal(t, 2, h.Len())
	assert.Equal(t, []string{"dune", "hobbit"}, h.Entries())
}

func TestHistoryDedupIsExact(t *testing.T) {
	h := NewHistory(50)

	h.Add("dune")
	h.Add("Dune")

	assert.Equal(t, []string{"Dune", "dune"}, h.Entries())
}

func TestHistoryBound(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Add(fmt.Sprintf("q%d", i))
	}

	assert.Equal(t, []string{"q5", "q4", "q3"}, h.Entries())
}

func TestHistoryIgnoresEmpty(t *testing.T) {
	h := NewHistory(50)
	h.Add("")
	assert.Zero(t, h.Len())
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistory(50)
	h.Add("dune")

	entries := h.Entries()
	entries[0] = "mutated"

	assert.Equal(t, []string{"dune"}, h.Entries())
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(50)
	h.Add("dune")
	h.Clear()
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Entries())
}

func TestHistoryDefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistorySize+10; i++ {
		h.Add(fmt.Sprintf("q%d", i))
	}
	assert.Equal(t, DefaultHistorySize, h.Len())
}
