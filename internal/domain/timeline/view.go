package timeline

// View is the renderable projection of an AnalysisResult: events in
// chronological order with their severity classification, plus derived
// phase and pattern membership. It holds no interactive state; see
// Expansion for that.
type View struct {
	Summary   string        `json:"summary,omitempty"`
	Events    []EventView   `json:"events"`
	Patterns  []PatternView `json:"patterns"`
	Phases    []PhaseView   `json:"phases"`
	Anomalies []AnomalyView `json:"anomalies"`
}

type EventView struct {
	Ordinal     int    `json:"ordinal"`
	Timestamp   string `json:"timestamp"`
	When        string `json:"when"` // display form of Timestamp
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Related     []int  `json:"related,omitempty"`
}

type PatternView struct {
	Index        int    `json:"index"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
	Severity     string `json:"severity"`
	Members      []int  `json:"members"` // resolved ordinals, dangling refs omitted
}

type PhaseView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     []int  `json:"members"`
}

type AnomalyView struct {
	Timestamp   string `json:"timestamp"`
	When        string `json:"when"`
	Description string `json:"description"`
}

// BuildView derives the view model from a canonical result. Membership
// is recomputed from scratch on every call; building twice from the same
// result yields identical views.
func BuildView(res *AnalysisResult) *View {
	idx := NewIndex(res.Events)

	v := &View{
		Summary:   res.Summary,
		Events:    make([]EventView, 0, idx.Len()),
		Patterns:  make([]PatternView, 0, len(res.Patterns)),
		Phases:    make([]PhaseView, 0, len(res.Phases)),
		Anomalies: make([]AnomalyView, 0, len(res.Anomalies)),
	}

	for _, ev := range idx.Events() {
		v.Events = append(v.Events, EventView{
			Ordinal:     ev.Ordinal,
			Timestamp:   ev.Timestamp,
			When:        FormatTimestamp(ev.Timestamp),
			Description: ev.Description,
			Details:     ev.Details,
			Category:    ev.Category(),
			Severity:    ev.Severity().String(),
			Related:     ev.Related,
		})
	}

	for i, p := range res.Patterns {
		members := idx.PatternMembers(p)
		ords := make([]int, 0, len(members))
		for _, ev := range members {
			ords = append(ords, ev.Ordinal)
		}
		v.Patterns = append(v.Patterns, PatternView{
			Index:        i,
			Description:  p.Description,
			Significance: p.Significance,
			Severity:     ClassifySignificance(Significance(p.Significance)).String(),
			Members:      ords,
		})
	}

	for _, p := range res.Phases {
		v.Phases = append(v.Phases, PhaseView{
			Name:        p.Name,
			Description: p.Description,
			Members:     idx.PhaseMembers(p),
		})
	}

	for _, a := range res.Anomalies {
		v.Anomalies = append(v.Anomalies, AnomalyView{
			Timestamp:   a.Timestamp,
			When:        FormatTimestamp(a.Timestamp),
			Description: a.Description,
		})
	}

	return v
}
