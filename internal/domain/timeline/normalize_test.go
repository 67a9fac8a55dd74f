package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLogAnalysisShape(t *testing.T) {
	payload := []byte(`{
		"events": [
			{"timestamp": "2023-01-01T10:05:00Z", "description": "retry", "level": "warning"},
			{"timestamp": "2023-01-01T10:00:00Z", "description": "link down", "level": "error", "details": "port 3", "relatedEvents": [1]}
		],
		"patterns": [
			{"description": "flap", "eventIndices": [0, 1], "significance": "high"}
		],
		"summary": "two issues"
	}`)

	res, err := Normalize(payload)
	require.NoError(t, err)

	require.Len(t, res.Events, 2)
	// Chronological order with ordinals equal to position.
	assert.Equal(t, "link down", res.Events[0].Description)
	assert.Equal(t, 0, res.Events[0].Ordinal)
	assert.Equal(t, "retry", res.Events[1].Description)
	assert.Equal(t, 1, res.Events[1].Ordinal)
	assert.Equal(t, LevelError, res.Events[0].Level)
	assert.Equal(t, "port 3", res.Events[0].Details)
	assert.Equal(t, []int{1}, res.Events[0].Related)

	require.Len(t, res.Patterns, 1)
	assert.Equal(t, []int{0, 1}, res.Patterns[0].Members)
	assert.Equal(t, "high", res.Patterns[0].Significance)

	assert.Equal(t, "two issues", res.Summary)
	assert.NotNil(t, res.Phases)
	assert.Empty(t, res.Phases)
	assert.NotNil(t, res.Anomalies)
	assert.Empty(t, res.Anomalies)
}

func TestNormalizePcapAnalysisShape(t *testing.T) {
	payload := []byte(`{
		"key_events": [
			{"timestamp": "2023-01-01T10:00:00Z", "description": "SIP INVITE", "significance": "medium"}
		],
		"phases": [
			{"name": "call setup", "description": "signalling", "start_time": "2023-01-01T10:00:00Z", "end_time": "2023-01-01T10:01:00Z"}
		],
		"anomalies": [
			{"timestamp": "2023-01-01T10:00:30Z", "description": "SYN flood"}
		]
	}`)

	res, err := Normalize(payload)
	require.NoError(t, err)

	require.Len(t, res.Events, 1)
	assert.Equal(t, SignificanceMedium, res.Events[0].Significance)
	assert.Empty(t, res.Events[0].Level)

	require.Len(t, res.Phases, 1)
	assert.Equal(t, "call setup", res.Phases[0].Name)
	assert.False(t, res.Phases[0].Start.IsZero())
	assert.True(t, res.Phases[0].Start.Before(res.Phases[0].End))

	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, "SYN flood", res.Anomalies[0].Description)

	assert.NotNil(t, res.Patterns)
	assert.Empty(t, res.Patterns)
}

func TestNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"no event list", `{"patterns": [], "summary": "x"}`},
		{"not json", `not json at all`},
		{"wrong types", `{"events": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Normalize([]byte(tt.payload))
			require.ErrorIs(t, err, ErrMalformedResult)
			assert.Nil(t, res, "no partial result on failure")
		})
	}
}

func TestNormalizeEmptyEventArrayIsValid(t *testing.T) {
	res, err := Normalize([]byte(`{"events": [], "patterns": [], "summary": ""}`))
	require.NoError(t, err)
	assert.Empty(t, res.Events)
}

func TestNormalizeIsPure(t *testing.T) {
	payload := []byte(`{
		"events": [
			{"timestamp": "2023-01-01T10:01:00Z", "description": "b", "level": "info"},
			{"timestamp": "2023-01-01T10:00:00Z", "description": "a", "level": "info"}
		],
		"patterns": []
	}`)

	first, err := Normalize(payload)
	require.NoError(t, err)
	second, err := Normalize(payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
