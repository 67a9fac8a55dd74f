package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseMembersInclusiveBounds(t *testing.T) {
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:00:00Z", "on start bound"),
		ev(t, "2023-01-01T10:01:30Z", "inside"),
		ev(t, "2023-01-01T10:03:00Z", "on end bound"),
		ev(t, "2023-01-01T10:05:00Z", "after"),
	})

	phase := Phase{
		Name:  "setup",
		Start: at(t, "2023-01-01T10:00:00Z"),
		End:   at(t, "2023-01-01T10:03:00Z"),
	}

	members := idx.PhaseMembers(phase)
	assert.Equal(t, []int{0, 1, 2}, members, "both bounds inclusive")

	for _, ord := range members {
		e, ok := idx.ByOrdinal(ord)
		require.True(t, ok)
		assert.False(t, e.At.Before(phase.Start))
		assert.False(t, e.At.After(phase.End))
	}
}

func TestPhaseMembersScenario(t *testing.T) {
	// Phase 10:00-10:03 over events at 10:00 and 10:05 contains only the
	// first event.
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:00:00Z", "link down"),
		ev(t, "2023-01-01T10:05:00Z", "retry"),
	})

	members := idx.PhaseMembers(Phase{
		Start: at(t, "2023-01-01T10:00:00Z"),
		End:   at(t, "2023-01-01T10:03:00Z"),
	})
	assert.Equal(t, []int{0}, members)
}

func TestPhaseMembersInvertedBounds(t *testing.T) {
	idx := NewIndex([]Event{ev(t, "2023-01-01T10:01:00Z", "x")})

	members := idx.PhaseMembers(Phase{
		Start: at(t, "2023-01-01T10:03:00Z"),
		End:   at(t, "2023-01-01T10:00:00Z"),
	})
	assert.Empty(t, members, "inverted bounds yield empty membership, bounds never swapped")
}

func TestPhaseMembersEmptyEventList(t *testing.T) {
	idx := NewIndex(nil)

	members := idx.PhaseMembers(Phase{
		Start: at(t, "2023-01-01T10:00:00Z"),
		End:   at(t, "2023-01-01T10:03:00Z"),
	})
	assert.Empty(t, members)
}

func TestPhaseMembersOverlappingPhasesShareEvents(t *testing.T) {
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:01:00Z", "shared"),
	})

	a := Phase{Start: at(t, "2023-01-01T10:00:00Z"), End: at(t, "2023-01-01T10:02:00Z")}
	b := Phase{Start: at(t, "2023-01-01T10:01:00Z"), End: at(t, "2023-01-01T10:03:00Z")}

	assert.Equal(t, []int{0}, idx.PhaseMembers(a))
	assert.Equal(t, []int{0}, idx.PhaseMembers(b))
}

func TestPhaseMembersDoesNotAccumulate(t *testing.T) {
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:00:00Z", "a"),
		ev(t, "2023-01-01T10:01:00Z", "b"),
	})
	phase := Phase{Start: at(t, "2023-01-01T10:00:00Z"), End: at(t, "2023-01-01T10:02:00Z")}

	first := idx.PhaseMembers(phase)
	second := idx.PhaseMembers(phase)
	third := idx.PhaseMembers(phase)
	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
	assert.Len(t, third, 2)
}

func TestPatternMembersResolvesInOrder(t *testing.T) {
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:00:00Z", "link down"),
		ev(t, "2023-01-01T10:05:00Z", "retry"),
	})

	members := idx.PatternMembers(Pattern{
		Description:  "flap",
		Significance: "high",
		Members:      []int{0, 1},
	})

	require.Len(t, members, 2)
	assert.Equal(t, "link down", members[0].Description)
	assert.Equal(t, "retry", members[1].Description)
}

func TestPatternMembersDropsDanglingRefs(t *testing.T) {
	idx := NewIndex([]Event{
		ev(t, "2023-01-01T10:00:00Z", "only"),
	})

	members := idx.PatternMembers(Pattern{Members: []int{3, 0, -1, 17}})

	require.Len(t, members, 1, "exactly the dangling entries are excluded")
	assert.Equal(t, "only", members[0].Description)
}

func TestPatternMembersEmptyPattern(t *testing.T) {
	idx := NewIndex(nil)
	assert.Empty(t, idx.PatternMembers(Pattern{Members: []int{0, 1, 2}}))
	assert.Empty(t, idx.PatternMembers(Pattern{}))
}
