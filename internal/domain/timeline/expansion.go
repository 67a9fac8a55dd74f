package timeline

// Expansion tracks which events and pattern groups currently show
// extended detail. It is ephemeral per-view state keyed by event ordinal
// and pattern index, has no effect on the canonical model, and is reset
// whenever a new AnalysisResult replaces the current one. It is driven
// by a single goroutine and is not safe for concurrent use.
type Expansion struct {
	events   map[int]struct{}
	patterns map[int]struct{}
}

// NewExpansion returns expansion state with everything collapsed.
func NewExpansion() *Expansion {
	return &Expansion{
		events:   make(map[int]struct{}),
		patterns: make(map[int]struct{}),
	}
}

// ToggleEvent expands the event if collapsed and collapses it if
// expanded. Two identical toggles return the state to where it started.
func (x *Expansion) ToggleEvent(ordinal int) {
	if _, ok := x.events[ordinal]; ok {
		delete(x.events, ordinal)
		return
	}
	x.events[ordinal] = struct{}{}
}

// ExpandRelated force-expands the event an operator reached through a
// cross-reference. It only ever adds: the target must become visible
// regardless of its prior state, and repeating the call changes nothing.
func (x *Expansion) ExpandRelated(ordinal int) {
	x.events[ordinal] = struct{}{}
}

// TogglePatternGroup toggles visibility of a pattern group. Pattern
// indices are an independent namespace from event ordinals.
func (x *Expansion) TogglePatternGroup(index int) {
	if _, ok := x.patterns[index]; ok {
		delete(x.patterns, index)
		return
	}
	x.patterns[index] = struct{}{}
}

// EventExpanded reports whether the event shows extended detail.
func (x *Expansion) EventExpanded(ordinal int) bool {
	_, ok := x.events[ordinal]
	return ok
}

// PatternGroupVisible reports whether the pattern group is expanded.
func (x *Expansion) PatternGroupVisible(index int) bool {
	_, ok := x.patterns[index]
	return ok
}

// Reset collapses everything.
func (x *Expansion) Reset() {
	x.events = make(map[int]struct{})
	x.patterns = make(map[int]struct{})
}
