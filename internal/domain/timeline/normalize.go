package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResult indicates the raw payload matches neither known
// analysis-result shape. It is the only hard failure in this package;
// every other irregularity degrades gracefully.
var ErrMalformedResult = errors.New("malformed analysis result")

// Raw wire shapes. The log analysis backend emits
// {events, patterns, summary}; the pcap analysis backend emits
// {key_events, phases, anomalies}. Both describe the same logical
// timeline and are unified here so the rest of the engine stays
// shape-agnostic.
type rawEvent struct {
	Timestamp     string `json:"timestamp"`
	Description   string `json:"description"`
	Level         string `json:"level"`
	Significance  string `json:"significance"`
	Details       string `json:"details"`
	RelatedEvents []int  `json:"relatedEvents"`
}

type rawPattern struct {
	Description  string `json:"description"`
	EventIndices []int  `json:"eventIndices"`
	Significance string `json:"significance"`
}

type rawPhase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type rawAnomaly struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

type rawResult struct {
	Events    []rawEvent   `json:"events"`
	KeyEvents []rawEvent   `json:"key_events"`
	Patterns  []rawPattern `json:"patterns"`
	Phases    []rawPhase   `json:"phases"`
	Anomalies []rawAnomaly `json:"anomalies"`
	Summary   string       `json:"summary"`
}

// Normalize parses a raw analysis payload in either wire shape and
// produces the canonical AnalysisResult: events sorted chronologically
// with ordinals assigned, optional collections defaulted to empty.
// The transformation is pure; re-running on the same payload yields the
// same result.
func Normalize(payload []byte) (*AnalysisResult, error) {
	var raw rawResult
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}

	// The event list is required in both variants; a present-but-empty
	// array is valid, an absent field in both is not.
	src := raw.Events
	if src == nil {
		src = raw.KeyEvents
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no event list in payload", ErrMalformedResult)
	}

	events := make([]Event, 0, len(src))
	for _, re := range src {
		at, _ := parseTimestamp(re.Timestamp)
		events = append(events, Event{
			Timestamp:    re.Timestamp,
			Description:  re.Description,
			Level:        Level(re.Level),
			Significance: Significance(re.Significance),
			Details:      re.Details,
			Related:      re.RelatedEvents,
			At:           at,
		})
	}

	res := &AnalysisResult{
		Events:    NewIndex(events).Events(),
		Patterns:  make([]Pattern, 0, len(raw.Patterns)),
		Phases:    make([]Phase, 0, len(raw.Phases)),
		Anomalies: make([]Anomaly, 0, len(raw.Anomalies)),
		Summary:   raw.Summary,
	}

	for _, rp := range raw.Patterns {
		res.Patterns = append(res.Patterns, Pattern{
			Description:  rp.Description,
			Significance: rp.Significance,
			Members:      append([]int(nil), rp.EventIndices...),
		})
	}
	for _, rp := range raw.Phases {
		start, _ := parseTimestamp(rp.StartTime)
		end, _ := parseTimestamp(rp.EndTime)
		res.Phases = append(res.Phases, Phase{
			Name:        rp.Name,
			Description: rp.Description,
			Start:       start,
			End:         end,
		})
	}
	for _, ra := range raw.Anomalies {
		at, _ := parseTimestamp(ra.Timestamp)
		res.Anomalies = append(res.Anomalies, Anomaly{
			Timestamp:   ra.Timestamp,
			Description: ra.Description,
			At:          at,
		})
	}

	return res, nil
}
