package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWithSummary(t *testing.T, summary string) *AnalysisResult {
	t.Helper()
	res, err := Normalize([]byte(`{"events": [], "patterns": [], "summary": "` + summary + `"}`))
	require.NoError(t, err)
	return res
}

func TestSessionAdopt(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Result())
	assert.Nil(t, s.View())

	gen := s.Begin()
	ok := s.Adopt(gen, resultWithSummary(t, "log 1"))
	require.True(t, ok)
	require.NotNil(t, s.View())
	assert.Equal(t, "log 1", s.View().Summary)
}

func TestSessionDiscardsStaleResult(t *testing.T) {
	s := NewSession()

	// Fetch for log 1 starts first, then the operator selects log 2.
	gen1 := s.Begin()
	gen2 := s.Begin()

	require.True(t, s.Adopt(gen2, resultWithSummary(t, "log 2")))

	// Log 1 resolves late; it must not overwrite log 2's view.
	assert.False(t, s.Adopt(gen1, resultWithSummary(t, "log 1")))
	assert.Equal(t, "log 2", s.View().Summary)
}

func TestSessionAdoptionResetsExpansion(t *testing.T) {
	s := NewSession()

	require.True(t, s.Adopt(s.Begin(), resultWithSummary(t, "log 1")))
	s.Expansion().ToggleEvent(0)
	s.Expansion().TogglePatternGroup(2)

	require.True(t, s.Adopt(s.Begin(), resultWithSummary(t, "log 2")))

	assert.False(t, s.Expansion().EventExpanded(0), "expansion state never carries across results")
	assert.False(t, s.Expansion().PatternGroupVisible(2))
}

func TestSessionSequentialFetches(t *testing.T) {
	s := NewSession()

	require.True(t, s.Adopt(s.Begin(), resultWithSummary(t, "first")))
	require.True(t, s.Adopt(s.Begin(), resultWithSummary(t, "second")))
	assert.Equal(t, "second", s.View().Summary)
	assert.Equal(t, "second", s.Result().Summary)
}
