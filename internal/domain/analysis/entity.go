package analysis

import "time"

// AnalysisID identifier type
type AnalysisID string

// ResolutionStatus tracks operator follow-up on an analysis
type ResolutionStatus string

const (
	ResolutionPending    ResolutionStatus = "pending"
	ResolutionInProgress ResolutionStatus = "in_progress"
	ResolutionResolved   ResolutionStatus = "resolved"
)

// Analysis represents a stored analysis result for one uploaded log.
// Result holds the raw JSON exactly as the analyzer produced it, in
// either of the two backend shapes; the timeline engine normalizes it
// at read time.
type Analysis struct {
	ID           AnalysisID       `json:"id"`
	LogID        string           `json:"logId"`
	Result       string           `json:"result"` // raw JSON from the analyzer
	Summary      string           `json:"summary,omitempty"`
	Resolution   ResolutionStatus `json:"resolutionStatus"`
	ProcessingMS int64            `json:"processing_ms"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Activity is one entry in the dashboard activity feed.
type Activity struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"` // upload | analysis | status
	Description string    `json:"description"`
	Actor       string    `json:"user"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Stats are the dashboard headline numbers.
type Stats struct {
	AnalyzedLogs   int    `json:"analyzedLogs"`
	IssuesResolved int    `json:"issuesResolved"`
	PendingIssues  int    `json:"pendingIssues"`
	AvgResolution  string `json:"avgResolutionTime"`
}
