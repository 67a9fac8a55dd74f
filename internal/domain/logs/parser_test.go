package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineVendorFormats(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name      string
		line      string
		timestamp string
		level     string
		message   string
	}{
		{
			"standard iso",
			"2023-01-01T10:00:00Z ERROR [eNB-42] S1AP link down",
			"2023-01-01T10:00:00Z", "ERROR", "S1AP link down",
		},
		{
			"iso with space",
			"2023-01-01 10:00:00 WARN [mme] paging overload",
			"2023-01-01 10:00:00", "WARN", "paging overload",
		},
		{
			"nokia slashes",
			"2023/01/01 10:00:00 MINOR [LTE-RRC] connection re-establishment",
			"2023/01/01 10:00:00", "MINOR", "connection re-establishment",
		},
		{
			// lowercase severity is not captured as a level; it stays in
			// the message, matching how the vendor patterns are ordered
			"ericsson lowercase level",
			"2023-01-01 10:00:00 info oam.fm alarm cleared",
			"2023-01-01 10:00:00", "", "info oam.fm alarm cleared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := p.ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.timestamp, line.Timestamp)
			assert.Equal(t, tt.level, line.Level)
			assert.Equal(t, tt.message, line.Message)
			assert.Equal(t, tt.line, line.Text)
		})
	}
}

func TestParseKeepsUnmatchedLinesAsRaw(t *testing.T) {
	p := NewParser()

	lines := p.Parse("2023-01-01T10:00:00Z ERROR boom\n---- divider ----\n\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[0].Message)
	assert.Equal(t, "---- divider ----", lines[1].Message)
	assert.Empty(t, lines[1].Timestamp)
}

func TestIsTelecomLog(t *testing.T) {
	p := NewParser()

	telecom := "2023-01-01T10:00:00Z ERROR link down\n2023-01-01T10:00:01Z INFO retry\n"
	assert.True(t, p.IsTelecomLog(telecom))

	prose := "Dear sir,\nplease find attached\nthe report you asked for\nregards\n"
	assert.False(t, p.IsTelecomLog(prose))

	assert.False(t, p.IsTelecomLog(""))

	// Half timestamped is the acceptance threshold.
	half := "2023-01-01T10:00:00Z ERROR a\nfree text\n"
	assert.True(t, p.IsTelecomLog(half))
}

func TestTruncate(t *testing.T) {
	short := "abc"
	assert.Equal(t, short, Truncate(short))

	long := make([]byte, SnippetLimit+10)
	for i := range long {
		long[i] = 'x'
	}
	got := Truncate(string(long))
	assert.Len(t, got, SnippetLimit+3)
	assert.Equal(t, "...", got[len(got)-3:])
}
