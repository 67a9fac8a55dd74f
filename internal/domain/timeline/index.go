package timeline

import "sort"

// Index is the temporal index over a set of events: the chronological
// ordering plus an O(1) ordinal lookup. Building it is a pure function of
// the input; re-running on the same events yields the same ordinals.
type Index struct {
	events []Event
}

// NewIndex sorts events ascending by parsed timestamp and assigns
// ordinals 0..n-1 over the sorted order. The sort is stable: ties, and
// events whose timestamp did not parse, keep their original relative
// order. The input slice is not modified.
func NewIndex(events []Event) *Index {
	sorted := append([]Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})
	for i := range sorted {
		sorted[i].Ordinal = i
	}
	return &Index{events: sorted}
}

// Events returns the chronologically ordered events. Callers must treat
// the slice as read-only.
func (x *Index) Events() []Event {
	return x.events
}

// Len returns the number of indexed events.
func (x *Index) Len() int {
	return len(x.events)
}

// ByOrdinal returns the event with the given ordinal. The second return
// is false when the ordinal does not resolve to an event.
func (x *Index) ByOrdinal(ordinal int) (Event, bool) {
	if ordinal < 0 || ordinal >= len(x.events) {
		return Event{}, false
	}
	return x.events[ordinal], true
}
