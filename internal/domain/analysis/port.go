package analysis

import "context"

// Repository port for persisting and querying analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	GetByLog(ctx context.Context, logID string) (*Analysis, error)
	Get(ctx context.Context, id AnalysisID) (*Analysis, error)
	UpdateResolution(ctx context.Context, id AnalysisID, status ResolutionStatus) error
	Stats(ctx context.Context) (Stats, error)
}

// ActivityRepository port for the activity feed
type ActivityRepository interface {
	Save(ctx context.Context, a *Activity) error
	Recent(ctx context.Context, limit int) ([]*Activity, error)
}
