package timeline

import (
	"context"

	"github.com/prav-arch/telelog/internal/domain/analysis"
	domain "github.com/prav-arch/telelog/internal/domain/timeline"
)

// Service implements use-cases untuk timeline view
type Service struct {
	Analyses analysis.Repository
}

// View loads the stored analysis for a log, normalizes its raw result
// and builds the renderable timeline.
func (s *Service) View(ctx context.Context, logID string) (*domain.View, error) {
	res, err := s.load(ctx, logID)
	if err != nil {
		return nil, err
	}
	return domain.BuildView(res), nil
}

func (s *Service) load(ctx context.Context, logID string) (*domain.AnalysisResult, error) {
	a, err := s.Analyses.GetByLog(ctx, logID)
	if err != nil {
		return nil, err
	}
	return domain.Normalize([]byte(a.Result))
}

// Viewer drives one interactive timeline session. The user can switch
// between logs faster than fetches resolve; the session's generation
// tokens make sure a slow fetch for a previous log never overwrites the
// view of the current one. Viewer is single-goroutine, like Session.
type Viewer struct {
	svc     *Service
	session *domain.Session
}

func NewViewer(svc *Service) *Viewer {
	return &Viewer{svc: svc, session: domain.NewSession()}
}

// Begin registers the intent to show a new log and returns the fetch
// generation token to pass back to Resolve.
func (v *Viewer) Begin() uint64 {
	return v.session.Begin()
}

// Resolve fetches the analysis for logID and offers it to the session
// under the given generation. It reports whether the result was adopted;
// a stale generation is discarded without touching the current view.
func (v *Viewer) Resolve(ctx context.Context, gen uint64, logID string) (bool, error) {
	res, err := v.svc.load(ctx, logID)
	if err != nil {
		return false, err
	}
	return v.session.Adopt(gen, res), nil
}

// Show is the one-shot path: Begin plus Resolve for callers that do not
// interleave fetches.
func (v *Viewer) Show(ctx context.Context, logID string) error {
	gen := v.session.Begin()
	_, err := v.Resolve(ctx, gen, logID)
	return err
}

// View returns the currently adopted view, or nil before the first
// successful resolve.
func (v *Viewer) View() *domain.View {
	return v.session.View()
}

// Expansion returns the interactive expansion state for the adopted view.
func (v *Viewer) Expansion() *domain.Expansion {
	return v.session.Expansion()
}
