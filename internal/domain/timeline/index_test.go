package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, ok := parseTimestamp(s)
	require.True(t, ok, "timestamp %q must parse", s)
	return ts
}

func ev(t *testing.T, ts, desc string) Event {
	t.Helper()
	return Event{Timestamp: ts, Description: desc, At: at(t, ts)}
}

func TestIndexSortsChronologically(t *testing.T) {
	events := []Event{
		ev(t, "2023-01-01T10:05:00Z", "third"),
		ev(t, "2023-01-01T10:00:00Z", "first"),
		ev(t, "2023-01-01T10:02:00Z", "second"),
	}

	idx := NewIndex(events)
	sorted := idx.Events()

	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].At.Before(sorted[i-1].At), "non-decreasing by timestamp")
	}
	assert.Equal(t, "first", sorted[0].Description)
	assert.Equal(t, "second", sorted[1].Description)
	assert.Equal(t, "third", sorted[2].Description)
	for i, e := range sorted {
		assert.Equal(t, i, e.Ordinal, "ordinal equals sorted position")
	}
}

func TestIndexStableOnTies(t *testing.T) {
	events := []Event{
		ev(t, "2023-01-01T10:00:00Z", "arrived first"),
		ev(t, "2023-01-01T10:00:00Z", "arrived second"),
		ev(t, "2023-01-01T10:00:00Z", "arrived third"),
	}

	sorted := NewIndex(events).Events()
	assert.Equal(t, "arrived first", sorted[0].Description)
	assert.Equal(t, "arrived second", sorted[1].Description)
	assert.Equal(t, "arrived third", sorted[2].Description)
}

func TestIndexUnparsableTimestampsKeepArrivalOrder(t *testing.T) {
	events := []Event{
		{Timestamp: "garbage-a", Description: "a"},
		{Timestamp: "garbage-b", Description: "b"},
		ev(t, "2023-01-01T10:00:00Z", "c"),
	}

	sorted := NewIndex(events).Events()
	// Zero parse times sort ahead of real ones, preserving arrival order
	// among themselves.
	assert.Equal(t, "a", sorted[0].Description)
	assert.Equal(t, "b", sorted[1].Description)
	assert.Equal(t, "c", sorted[2].Description)
}

func TestIndexIsRestartable(t *testing.T) {
	events := []Event{
		ev(t, "2023-01-01T10:03:00Z", "y"),
		ev(t, "2023-01-01T10:01:00Z", "x"),
	}

	first := NewIndex(events).Events()
	second := NewIndex(events).Events()
	assert.Equal(t, first, second)
	// Input arrival order is untouched.
	assert.Equal(t, "y", events[0].Description)
}

func TestIndexByOrdinal(t *testing.T) {
	idx := NewIndex([]Event{ev(t, "2023-01-01T10:00:00Z", "only")})

	got, ok := idx.ByOrdinal(0)
	require.True(t, ok)
	assert.Equal(t, "only", got.Description)

	_, ok = idx.ByOrdinal(1)
	assert.False(t, ok)
	_, ok = idx.ByOrdinal(-1)
	assert.False(t, ok)

	assert.Equal(t, 1, idx.Len())
}
