package timeline

// Severity is the three-way ordering shared by both upstream
// vocabularies: high/error > medium/warning > low/info.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// ClassifyLevel ranks a presentational level. Total over all inputs;
// unrecognized values rank lowest.
func ClassifyLevel(l Level) Severity {
	switch l {
	case LevelError:
		return SeverityHigh
	case LevelWarning:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ClassifySignificance ranks a significance value. Total over all
// inputs; unrecognized values rank lowest.
func ClassifySignificance(s Significance) Severity {
	switch s {
	case SignificanceHigh:
		return SeverityHigh
	case SignificanceMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Severity ranks the event using whichever vocabulary it carries. Events
// with a level use the level taxonomy; otherwise the significance
// taxonomy applies, defaulting to the lowest rank.
func (e Event) Severity() Severity {
	if e.Level != "" {
		return ClassifyLevel(e.Level)
	}
	return ClassifySignificance(e.Significance)
}

// Category returns the presentational tag for the event:
// error/warning/success/info for events carrying a level,
// high/medium/low for events carrying a significance. Malformed values
// degrade to the lowest-severity tag of their taxonomy.
func (e Event) Category() string {
	if e.Level != "" {
		switch e.Level {
		case LevelError, LevelWarning, LevelSuccess, LevelInfo:
			return string(e.Level)
		default:
			return string(LevelInfo)
		}
	}
	switch e.Significance {
	case SignificanceHigh, SignificanceMedium, SignificanceLow:
		return string(e.Significance)
	default:
		return string(SignificanceLow)
	}
}
