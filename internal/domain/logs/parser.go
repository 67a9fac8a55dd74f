package logs

import (
	"regexp"
	"strings"
)

// Line is one parsed log line. Fields other than Text and Message are
// empty when the line matched no vendor format.
type Line struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// Parser recognizes the line formats of common telecom equipment
// vendors. Safe for concurrent use; compiled patterns are immutable.
type Parser struct {
	formats []*regexp.Regexp
	stamped *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		formats: []*regexp.Regexp{
			// ISO timestamp, optional level, optional [component]
			regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?)\s+(?:([A-Z]+)\s+)?(?:\[([^\]]+)\]\s+)?(.*)$`),
			// Cisco: month-first timestamp, facility, %MSG-CODE:
			regexp.MustCompile(`^(\w+\s+\d+\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+(?:([A-Z0-9-]+):\s+)?(?:%([A-Z0-9-]+)(?:-\d+)?:\s+)?(.*)$`),
			// Nokia/Alcatel-Lucent: slash-separated date
			regexp.MustCompile(`^(\d{4}/\d{2}/\d{2}\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+(?:([A-Z]+)\s+)?(?:\[(\w+(?:\-\w+)*)\]\s+)?(.*)$`),
			// Huawei: strict ISO with T
			regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+(?:([A-Z]+)\s+)?(?:\[([^\]]+)\]\s+)?(.*)$`),
			// Ericsson: space-separated, dotted component path
			regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}(?:\.\d+)?)\s+(?:(\w+)\s+)?(?:(\w+(?:\.\w+)*)\s+)?(.*)$`),
		},
		stamped: regexp.MustCompile(`(\d{4}[-/]\d{2}[-/]\d{2}[T ]\d{2}:\d{2}:\d{2}|\w+\s+\d+\s+\d{2}:\d{2}:\d{2})`),
	}
}

// ParseLine matches a single line against the vendor formats. The second
// return is false when nothing matched.
func (p *Parser) ParseLine(line string) (Line, bool) {
	for _, re := range p.formats {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return Line{
			Text:      line,
			Timestamp: m[1],
			Level:     m[2],
			Component: m[3],
			Message:   m[4],
		}, true
	}
	return Line{}, false
}

// Parse splits content into parsed lines. Lines matching no format are
// kept as raw text so nothing is lost.
func (p *Parser) Parse(content string) []Line {
	var out []Line
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if parsed, ok := p.ParseLine(line); ok {
			out = append(out, parsed)
			continue
		}
		out = append(out, Line{Text: line, Message: line})
	}
	return out
}

// IsTelecomLog samples the first 20 non-empty lines and reports whether
// at least half of them carry a recognizable timestamp.
func (p *Parser) IsTelecomLog(content string) bool {
	var sample []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == 20 {
			break
		}
	}
	if len(sample) == 0 {
		return false
	}

	matches := 0
	for _, line := range sample {
		if p.stamped.MatchString(line) {
			matches++
		}
	}
	return float64(matches)/float64(len(sample)) >= 0.5
}
