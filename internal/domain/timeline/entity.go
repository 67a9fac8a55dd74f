package timeline

import "time"

// Level taxonomy carried by events from the LLM log analysis.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Significance taxonomy carried by key events and anomalies from the
// packet-capture analysis.
type Significance string

const (
	SignificanceLow    Significance = "low"
	SignificanceMedium Significance = "medium"
	SignificanceHigh   Significance = "high"
)

// Event is a single timestamped entry on the timeline. Ordinal is the
// event's position in the chronological ordering and is the sole identity
// used for correlation and expansion tracking. Immutable once indexed.
type Event struct {
	Ordinal      int          `json:"ordinal"`
	Timestamp    string       `json:"timestamp"` // original value as received
	Description  string       `json:"description"`
	Level        Level        `json:"level,omitempty"`
	Significance Significance `json:"significance,omitempty"`
	Details      string       `json:"details,omitempty"`
	Related      []int        `json:"related,omitempty"` // ordinals of cross-referenced events

	// At is the parsed timestamp; zero when the original could not be parsed.
	At time.Time `json:"-"`
}

// Pattern is a backend-detected group of events sharing a causal or
// thematic relationship. Membership is explicit and authoritative; it is
// never inferred from time. Members may reference ordinals that no longer
// resolve to an event.
type Pattern struct {
	Description  string `json:"description"`
	Significance string `json:"significance"`
	Members      []int  `json:"members"`
}

// Phase is a named time interval. It stores no event ordinals; membership
// is derived by inclusive time-range containment, so two overlapping
// phases may share events.
type Phase struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Start       time.Time `json:"start_time"`
	End         time.Time `json:"end_time"`
}

// Anomaly is a standalone flagged event, not correlated to phases or
// patterns.
type Anomaly struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`

	At time.Time `json:"-"`
}

// AnalysisResult is the canonical model produced by Normalize. It is
// created once per fetch, held read-only, and replaced wholesale on
// refetch.
type AnalysisResult struct {
	Events    []Event   `json:"events"`
	Patterns  []Pattern `json:"patterns"`
	Phases    []Phase   `json:"phases"`
	Anomalies []Anomaly `json:"anomalies"`
	Summary   string    `json:"summary,omitempty"`
}
