package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/prav-arch/telelog/internal/domain/analysis"
)

type AnalysisRepository struct{ db *sql.DB }

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository { return &AnalysisRepository{db: db} }

// Save inserts an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO log_analyses
  (id, log_id, result_json, summary, resolution_status, processing_ms, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
  log_id = EXCLUDED.log_id,
  result_json = EXCLUDED.result_json,
  summary = EXCLUDED.summary,
  resolution_status = EXCLUDED.resolution_status,
  processing_ms = EXCLUDED.processing_ms;`

	logID := stringOrDash(a.LogID)
	result := a.Result
	if strings.TrimSpace(result) == "" {
		result = "{}"
	}
	resolution := a.Resolution
	if resolution == "" {
		resolution = domain.ResolutionPending
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q, a.ID, logID, result, a.Summary, resolution, a.ProcessingMS, createdAt)
	return err
}

// GetByLog returns the newest analysis for a log
func (r *AnalysisRepository) GetByLog(ctx context.Context, logID string) (*domain.Analysis, error) {
	const q = `
SELECT id, log_id, result_json, summary, resolution_status, processing_ms, created_at
FROM log_analyses
WHERE log_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1;`

	return scanAnalysis(r.db.QueryRowContext(ctx, q, logID))
}

// Get by analysis ID
func (r *AnalysisRepository) Get(ctx context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	const q = `
SELECT id, log_id, result_json, summary, resolution_status, processing_ms, created_at
FROM log_analyses
WHERE id = $1 LIMIT 1;`

	return scanAnalysis(r.db.QueryRowContext(ctx, q, id))
}

// UpdateResolution moves operator follow-up state
func (r *AnalysisRepository) UpdateResolution(ctx context.Context, id domain.AnalysisID, status domain.ResolutionStatus) error {
	const q = `UPDATE log_analyses SET resolution_status = $1 WHERE id = $2;`
	_, err := r.db.ExecContext(ctx, q, status, id)
	return err
}

// Stats aggregates the dashboard headline numbers
func (r *AnalysisRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var s domain.Stats

	const analyzed = `SELECT COUNT(*) FROM telecom_logs WHERE status = 'analyzed';`
	if err := r.db.QueryRowContext(ctx, analyzed).Scan(&s.AnalyzedLogs); err != nil {
		return s, err
	}

	const resolved = `SELECT COUNT(*) FROM log_analyses WHERE resolution_status = 'resolved';`
	if err := r.db.QueryRowContext(ctx, resolved).Scan(&s.IssuesResolved); err != nil {
		return s, err
	}

	const pending = `SELECT COUNT(*) FROM log_analyses WHERE resolution_status IN ('pending','in_progress');`
	if err := r.db.QueryRowContext(ctx, pending).Scan(&s.PendingIssues); err != nil {
		return s, err
	}

	const avg = `
SELECT COALESCE(AVG(processing_ms), 0) FROM log_analyses
WHERE created_at >= NOW() - INTERVAL '7 days';`

	var avgMS float64
	if err := r.db.QueryRowContext(ctx, avg).Scan(&avgMS); err != nil {
		return s, err
	}
	s.AvgResolution = (time.Duration(avgMS) * time.Millisecond).Round(100 * time.Millisecond).String()

	return s, nil
}

func scanAnalysis(row *sql.Row) (*domain.Analysis, error) {
	var a domain.Analysis
	var created time.Time
	if err := row.Scan(&a.ID, &a.LogID, &a.Result, &a.Summary, &a.Resolution, &a.ProcessingMS, &created); err != nil {
		return nil, err
	}
	a.CreatedAt = created
	return &a, nil
}
