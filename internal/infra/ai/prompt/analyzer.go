package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prav-arch/telelog/internal/domain/logs"
)

// AnalyzeLogContent inspects log content for known telecom failure
// signatures and returns a JSON string in the log-analysis schema. It is
// the fallback path when the LLM server is unreachable; it never fails
// and only returns the JSON string.
func AnalyzeLogContent(content string) string {
	type event struct {
		Timestamp   string `json:"timestamp"`
		Description string `json:"description"`
		Level       string `json:"level"`
		Details     string `json:"details,omitempty"`
	}
	type pattern struct {
		Description  string `json:"description"`
		EventIndices []int  `json:"eventIndices"`
		Significance string `json:"significance"`
	}
	type output struct {
		Events   []event   `json:"events"`
		Patterns []pattern `json:"patterns"`
		Summary  string    `json:"summary"`
	}

	// Signature groups checked per line, most specific first. A line
	// lands in at most one group.
	groups := []struct {
		key          string
		level        string
		significance string
		description  string
		match        func(string) bool
	}{
		{
			"timeout", "error", "high", "Repeated request timeouts",
			func(s string) bool { return strings.Contains(s, "timeout") || strings.Contains(s, "timed out") },
		},
		{
			"failure", "error", "high", "Recurring failure events",
			func(s string) bool { return strings.Contains(s, "error") || strings.Contains(s, "fail") },
		},
		{
			"warning", "warning", "medium", "Recurring warnings",
			func(s string) bool { return strings.Contains(s, "warn") },
		},
	}

	out := output{Events: []event{}, Patterns: []pattern{}}
	indices := make(map[string][]int, len(groups))

	for _, ln := range logs.NewParser().Parse(content) {
		lower := strings.ToLower(ln.Text)
		for _, g := range groups {
			if !g.match(lower) {
				continue
			}
			indices[g.key] = append(indices[g.key], len(out.Events))
			out.Events = append(out.Events, event{
				Timestamp:   ln.Timestamp,
				Description: ln.Message,
				Level:       g.level,
				Details:     ln.Component,
			})
			break
		}
	}

	// Groups keep their declaration order so output is deterministic.
	for _, g := range groups {
		members := indices[g.key]
		if len(members) < 2 {
			continue
		}
		out.Patterns = append(out.Patterns, pattern{
			Description:  fmt.Sprintf("%s (%d occurrences)", g.description, len(members)),
			EventIndices: members,
			Significance: g.significance,
		})
	}

	switch {
	case len(out.Events) == 0:
		out.Events = append(out.Events, event{
			Description: "No significant issues detected",
			Level:       "info",
		})
		out.Summary = "No issues found"
	default:
		out.Summary = fmt.Sprintf("Analysis completed with %d potential issues identified", len(out.Events))
	}

	b, err := json.Marshal(out)
	if err != nil {
		// Minimal fallback that still satisfies the schema.
		data, _ := json.Marshal(output{
			Events:   []event{},
			Patterns: []pattern{},
			Summary:  "Analysis error; ensure content is readable and try again.",
		})
		return string(data)
	}
	return string(b)
}
