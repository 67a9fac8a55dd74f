package timeline

// Session holds the analysis currently on display and guards it against
// out-of-order fetch completions: a fetch begun before the currently
// adopted one delivers a stale result that must not overwrite the newer
// view. All mutation happens on one goroutine; Session takes no locks.
type Session struct {
	issued  uint64
	adopted uint64

	result    *AnalysisResult
	view      *View
	expansion *Expansion
}

// NewSession returns an empty session with nothing adopted.
func NewSession() *Session {
	return &Session{expansion: NewExpansion()}
}

// Begin registers a new fetch and returns its generation token. The
// caller passes the token back to Adopt when the fetch resolves.
func (s *Session) Begin() uint64 {
	s.issued++
	return s.issued
}

// Adopt installs the resolved result for the given generation. A result
// whose generation is not newer than the adopted one is discarded and
// Adopt reports false. Adoption replaces the model wholesale and resets
// expansion state to all-collapsed.
func (s *Session) Adopt(gen uint64, res *AnalysisResult) bool {
	if gen <= s.adopted {
		return false
	}
	s.adopted = gen
	s.result = res
	s.view = BuildView(res)
	s.expansion.Reset()
	return true
}

// Result returns the currently adopted canonical result, or nil when no
// fetch has resolved yet.
func (s *Session) Result() *AnalysisResult {
	return s.result
}

// View returns the view model for the adopted result, or nil when no
// fetch has resolved yet.
func (s *Session) View() *View {
	return s.view
}

// Expansion returns the session's interactive expansion state.
func (s *Session) Expansion() *Expansion {
	return s.expansion
}
