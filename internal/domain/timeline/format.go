package timeline

import (
	"strings"
	"time"
)

// Timestamp layouts seen across telecom vendor logs and the analysis
// backends: ISO 8601 with and without zone, Nokia (slash-separated),
// Ericsson (space-separated), Cisco (month-first).
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05.999999999",
	"2006/01/02 15:04:05",
	"Jan 2 15:04:05.999999999",
	"Jan 2 15:04:05",
}

// parseTimestamp tries each known layout. The second return is false
// when no layout matches.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a raw timestamp into the fixed display form
// "Jan 02 15:04:05". Unparsable input is echoed unchanged so a bad
// timestamp never blocks rendering.
func FormatTimestamp(raw string) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.Format("Jan 02 15:04:05")
}
