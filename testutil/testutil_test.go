package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary(t *testing.T) {
	records := Library()
	require.NotEmpty(t, records)

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		assert.NotEmpty(t, rec.ID)
		_, dup := seen[rec.ID]
		assert.False(t, dup, "duplicate id %s", rec.ID)
		seen[rec.ID] = struct{}{}
	}
}

func TestRecordsDeterministic(t *testing.T) {
	a := NewRNG(4711).Records(50)
	b := NewRNG(4711).Records(50)
	assert.Equal(t, a, b)
}

func TestRecordsShape(t *testing.T) {
	records := NewRNG(4711).Records(100)
	require.Len(t, records, 100)

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		require.NotEmpty(t, rec.ID)
		_, dup := seen[rec.ID]
		require.False(t, dup)
		seen[rec.ID] = struct{}{}

		assert.NotEmpty(t, rec.Title)
		assert.GreaterOrEqual(t, rec.Progress, 0.0)
		assert.LessOrEqual(t, rec.Progress, 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Records(5)
	rng.Reset()
	b := rng.Records(5)
	assert.Equal(t, a, b)
}
