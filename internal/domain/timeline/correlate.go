package timeline

// PhaseMembers derives the membership of a phase: the ordinals of all
// indexed events whose timestamp falls within [phase.Start, phase.End],
// both bounds inclusive. Overlapping phases may share events. A phase
// whose end precedes its start yields empty membership; bounds are never
// swapped. Each call computes a fresh slice, so repeated calls on the
// same inputs never accumulate.
func (x *Index) PhaseMembers(p Phase) []int {
	members := make([]int, 0)
	if p.End.Before(p.Start) {
		return members
	}
	for _, ev := range x.events {
		if ev.At.Before(p.Start) || ev.At.After(p.End) {
			continue
		}
		members = append(members, ev.Ordinal)
	}
	return members
}

// PatternMembers resolves a pattern's explicit ordinal references against
// the index, in the pattern's stored order. An ordinal with no matching
// event is dropped silently rather than failing, so the view stays
// renderable when pattern data has drifted from the event list.
func (x *Index) PatternMembers(p Pattern) []Event {
	members := make([]Event, 0, len(p.Members))
	for _, ord := range p.Members {
		if ev, ok := x.ByOrdinal(ord); ok {
			members = append(members, ev)
		}
	}
	return members
}
