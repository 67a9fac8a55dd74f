package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/prav-arch/telelog/internal/application"
	"github.com/prav-arch/telelog/internal/domain/ai"
	"github.com/prav-arch/telelog/internal/domain/analysis"
	domain "github.com/prav-arch/telelog/internal/domain/logs"
)

// Service implements use-cases untuk LogFile
// Service is designed to be used concurrently and is thread-safe
type Service struct {
	Logs       domain.Repository
	Analyses   analysis.Repository
	Activities analysis.ActivityRepository
	Files      domain.FileStore
	AI         ai.Client
	Clock      application.Clock
}

//
// ==== USE CASES ====
//

// Command untuk upload log
type UploadCommand struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Upload simpan file ke object storage + catat metadata-nya
func (s *Service) Upload(ctx context.Context, cmd UploadCommand) (*domain.LogFile, error) {
	now := s.Clock.Now()
	id := domain.LogID(uuid.New().String())

	kind, err := kindFromFilename(cmd.Filename)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logs/%s/%s", id, cmd.Filename)
	url, err := s.Files.Put(ctx, key, bytes.NewReader(cmd.Content), int64(len(cmd.Content)), cmd.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	// pcap is binary, hanya simpan snippet untuk file teks
	snippet := ""
	if kind != domain.KindPcap {
		snippet = domain.Truncate(string(cmd.Content))
	}

	l := &domain.LogFile{
		ID:         id,
		Filename:   cmd.Filename,
		Size:       int64(len(cmd.Content)),
		Kind:       kind,
		Status:     domain.StatusPending,
		StorageURL: url,
		Snippet:    snippet,
		UploadedAt: now,
	}
	if err := s.Logs.Save(ctx, l); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, "upload", fmt.Sprintf("Uploaded %s (%d bytes)", cmd.Filename, l.Size))

	return l, nil
}

// AnalyzeUntilDone → jalanin analisis dengan context.Background()
// cocok dipanggil dari goroutine di router supaya gak kena context canceled
func (s *Service) AnalyzeUntilDone(logID domain.LogID, content string) (*analysis.Analysis, error) {
	return s.Analyze(context.Background(), logID, content)
}

// Analyze kirim isi log ke analyzer → simpan hasil mentahnya
func (s *Service) Analyze(ctx context.Context, logID domain.LogID, content string) (*analysis.Analysis, error) {
	l, err := s.Logs.Get(ctx, logID)
	if err != nil {
		return nil, err
	}

	start := s.Clock.Now()
	_ = s.Logs.UpdateStatus(ctx, l.ID, domain.StatusProcessing)

	result, err := s.AI.Analyze(ctx, content)
	if err != nil {
		_ = s.Logs.UpdateStatus(context.Background(), l.ID, domain.StatusFailed)
		s.recordActivity(ctx, "analysis", fmt.Sprintf("Analysis failed for %s", l.Filename))
		return nil, err
	}

	a := &analysis.Analysis{
		ID:           analysis.AnalysisID(uuid.New().String()),
		LogID:        string(l.ID),
		Result:       result,
		Summary:      summaryFromResult(result),
		Resolution:   analysis.ResolutionPending,
		ProcessingMS: s.Clock.Now().Sub(start).Milliseconds(),
		CreatedAt:    start,
	}
	if err := s.Analyses.Save(ctx, a); err != nil {
		return nil, err
	}

	if err := s.Logs.UpdateStatus(ctx, l.ID, domain.StatusAnalyzed); err != nil {
		return a, err
	}

	s.recordActivity(ctx, "analysis", fmt.Sprintf("Analyzed %s", l.Filename))

	return a, nil
}

// Get metadata satu log
func (s *Service) Get(ctx context.Context, id domain.LogID) (*domain.LogFile, error) {
	return s.Logs.Get(ctx, id)
}

// List daftar log terbaru
func (s *Service) List(ctx context.Context, limit int) ([]*domain.LogFile, error) {
	return s.Logs.List(ctx, limit)
}

// Search cari log berdasarkan snippet/filename
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*domain.LogFile, error) {
	return s.Logs.Search(ctx, strings.TrimSpace(query), limit)
}

// GetAnalysis hasil analisis terbaru untuk satu log
func (s *Service) GetAnalysis(ctx context.Context, logID domain.LogID) (*analysis.Analysis, error) {
	return s.Analyses.GetByLog(ctx, string(logID))
}

// UpdateResolution → operator menandai follow-up sebuah analisis
func (s *Service) UpdateResolution(ctx context.Context, id analysis.AnalysisID, status analysis.ResolutionStatus) error {
	if err := s.Analyses.UpdateResolution(ctx, id, status); err != nil {
		return err
	}
	s.recordActivity(ctx, "status", fmt.Sprintf("Analysis %s marked %s", id, status))
	return nil
}

// Stats angka-angka headline dashboard
func (s *Service) Stats(ctx context.Context) (analysis.Stats, error) {
	return s.Analyses.Stats(ctx)
}

// RecentActivities feed aktivitas terakhir
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]*analysis.Activity, error) {
	return s.Activities.Recent(ctx, limit)
}

// recordActivity best-effort, jangan gagalkan use-case utama
func (s *Service) recordActivity(ctx context.Context, typ, desc string) {
	_ = s.Activities.Save(ctx, &analysis.Activity{
		Type:        typ,
		Description: desc,
		Actor:       "system",
		CreatedAt:   s.Clock.Now(),
	})
}

func kindFromFilename(filename string) (domain.Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return domain.KindText, nil
	case ".log":
		return domain.KindLog, nil
	case ".pcap":
		return domain.KindPcap, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// summaryFromResult pulls a human-readable summary out of the raw
// analyzer JSON, whichever of the two shapes it is in.
func summaryFromResult(result string) string {
	var probe struct {
		Summary   string            `json:"summary"`
		KeyEvents []json.RawMessage `json:"key_events"`
	}
	if err := json.Unmarshal([]byte(result), &probe); err != nil {
		return ""
	}
	if probe.Summary != "" {
		return probe.Summary
	}
	if len(probe.KeyEvents) > 0 {
		return fmt.Sprintf("%d key events detected", len(probe.KeyEvents))
	}
	return ""
}
