package logs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prav-arch/telelog/internal/domain/analysis"
	domain "github.com/prav-arch/telelog/internal/domain/logs"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeLogRepo struct {
	logs     map[domain.LogID]*domain.LogFile
	statuses []domain.Status
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: make(map[domain.LogID]*domain.LogFile)}
}

func (r *fakeLogRepo) Save(_ context.Context, l *domain.LogFile) error {
	cp := *l
	r.logs[l.ID] = &cp
	return nil
}

func (r *fakeLogRepo) Get(_ context.Context, id domain.LogID) (*domain.LogFile, error) {
	l, ok := r.logs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return l, nil
}

func (r *fakeLogRepo) List(_ context.Context, limit int) ([]*domain.LogFile, error) {
	var out []*domain.LogFile
	for _, l := range r.logs {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLogRepo) UpdateStatus(_ context.Context, id domain.LogID, status domain.Status) error {
	if l, ok := r.logs[id]; ok {
		l.Status = status
	}
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *fakeLogRepo) Search(_ context.Context, query string, limit int) ([]*domain.LogFile, error) {
	return nil, nil
}

type fakeAnalysisRepo struct {
	saved []*analysis.Analysis
}

func (r *fakeAnalysisRepo) Save(_ context.Context, a *analysis.Analysis) error {
	cp := *a
	r.saved = append(r.saved, &cp)
	return nil
}

func (r *fakeAnalysisRepo) GetByLog(_ context.Context, logID string) (*analysis.Analysis, error) {
	for i := len(r.saved) - 1; i >= 0; i-- {
		if r.saved[i].LogID == logID {
			return r.saved[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeAnalysisRepo) Get(_ context.Context, id analysis.AnalysisID) (*analysis.Analysis, error) {
	for _, a := range r.saved {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeAnalysisRepo) UpdateResolution(_ context.Context, id analysis.AnalysisID, status analysis.ResolutionStatus) error {
	for _, a := range r.saved {
		if a.ID == id {
			a.Resolution = status
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeAnalysisRepo) Stats(_ context.Context) (analysis.Stats, error) {
	return analysis.Stats{AnalyzedLogs: len(r.saved)}, nil
}

type fakeActivityRepo struct {
	entries []*analysis.Activity
}

func (r *fakeActivityRepo) Save(_ context.Context, a *analysis.Activity) error {
	r.entries = append(r.entries, a)
	return nil
}

func (r *fakeActivityRepo) Recent(_ context.Context, limit int) ([]*analysis.Activity, error) {
	return r.entries, nil
}

type fakeFileStore struct {
	keys []string
}

func (f *fakeFileStore) Put(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	f.keys = append(f.keys, key)
	return "http://minio/telelog/" + key, nil
}

type fakeAI struct {
	result string
	err    error
}

func (f *fakeAI) Analyze(_ context.Context, _ string) (string, error) {
	return f.result, f.err
}

func newService(ai *fakeAI) (*Service, *fakeLogRepo, *fakeAnalysisRepo, *fakeActivityRepo) {
	logs := newFakeLogRepo()
	analyses := &fakeAnalysisRepo{}
	activities := &fakeActivityRepo{}
	svc := &Service{
		Logs:       logs,
		Analyses:   analyses,
		Activities: activities,
		Files:      &fakeFileStore{},
		AI:         ai,
		Clock:      fixedClock{now: time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)},
	}
	return svc, logs, analyses, activities
}

func TestUpload(t *testing.T) {
	svc, repo, _, activities := newService(&fakeAI{})

	l, err := svc.Upload(context.Background(), UploadCommand{
		Filename:    "enodeb.log",
		ContentType: "text/plain",
		Content:     []byte("2023-01-01 10:00:00 ERROR RRC connection released"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, domain.KindLog, l.Kind)
	assert.Equal(t, domain.StatusPending, l.Status)
	assert.Contains(t, l.StorageURL, string(l.ID))
	assert.Contains(t, l.Snippet, "RRC connection released")

	stored, err := repo.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Filename, stored.Filename)

	require.Len(t, activities.entries, 1)
	assert.Equal(t, "upload", activities.entries[0].Type)
}

func TestUploadPcapSkipsSnippet(t *testing.T) {
	svc, _, _, _ := newService(&fakeAI{})

	l, err := svc.Upload(context.Background(), UploadCommand{
		Filename: "capture.pcap",
		Content:  []byte{0xd4, 0xc3, 0xb2, 0xa1, 0x02, 0x00},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindPcap, l.Kind)
	assert.Empty(t, l.Snippet)
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	svc, _, _, _ := newService(&fakeAI{})

	_, err := svc.Upload(context.Background(), UploadCommand{
		Filename: "report.pdf",
		Content:  []byte("x"),
	})
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	ai := &fakeAI{result: `{"events":[],"patterns":[],"summary":"Attach storm on eNB-42"}`}
	svc, repo, analyses, _ := newService(ai)

	l, err := svc.Upload(context.Background(), UploadCommand{
		Filename: "attach.log",
		Content:  []byte("log body"),
	})
	require.NoError(t, err)

	a, err := svc.Analyze(context.Background(), l.ID, "log body")
	require.NoError(t, err)

	assert.Equal(t, string(l.ID), a.LogID)
	assert.Equal(t, "Attach storm on eNB-42", a.Summary)
	assert.Equal(t, analysis.ResolutionPending, a.Resolution)
	require.Len(t, analyses.saved, 1)

	stored, err := repo.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnalyzed, stored.Status)
	assert.Equal(t, []domain.Status{domain.StatusProcessing, domain.StatusAnalyzed}, repo.statuses)
}

func TestAnalyzeFailureMarksLog(t *testing.T) {
	ai := &fakeAI{err: errors.New("model unavailable")}
	svc, repo, analyses, _ := newService(ai)

	l, err := svc.Upload(context.Background(), UploadCommand{
		Filename: "attach.log",
		Content:  []byte("log body"),
	})
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), l.ID, "log body")
	assert.Error(t, err)
	assert.Empty(t, analyses.saved)

	stored, err := repo.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
}

func TestUpdateResolution(t *testing.T) {
	ai := &fakeAI{result: `{"key_events":[{"timestamp":"2023-01-01 10:00:00","description":"x","significance":"high"}]}`}
	svc, _, analyses, activities := newService(ai)

	l, err := svc.Upload(context.Background(), UploadCommand{
		Filename: "x.txt",
		Content:  []byte("y"),
	})
	require.NoError(t, err)

	a, err := svc.Analyze(context.Background(), l.ID, "y")
	require.NoError(t, err)
	assert.Equal(t, "1 key events detected", a.Summary)

	require.NoError(t, svc.UpdateResolution(context.Background(), a.ID, analysis.ResolutionResolved))
	assert.Equal(t, analysis.ResolutionResolved, analyses.saved[0].Resolution)

	last := activities.entries[len(activities.entries)-1]
	assert.Equal(t, "status", last.Type)
}

func TestSummaryFromResult(t *testing.T) {
	assert.Equal(t, "boom", summaryFromResult(`{"summary":"boom"}`))
	assert.Equal(t, "2 key events detected", summaryFromResult(`{"key_events":[{},{}]}`))
	assert.Empty(t, summaryFromResult(`{"events":[]}`))
	assert.Empty(t, summaryFromResult(`not json`))
}
