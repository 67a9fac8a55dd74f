package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	applogs "github.com/prav-arch/telelog/internal/application/logs"
	apptimeline "github.com/prav-arch/telelog/internal/application/timeline"
	domai "github.com/prav-arch/telelog/internal/domain/ai"
	domanalysis "github.com/prav-arch/telelog/internal/domain/analysis"
	domlogs "github.com/prav-arch/telelog/internal/domain/logs"
	domtimeline "github.com/prav-arch/telelog/internal/domain/timeline"
	"github.com/prav-arch/telelog/internal/middleware"
)

type Router struct {
	logsSvc     *applogs.Service
	timelineSvc *apptimeline.Service
	parser      *domlogs.Parser
	maxUpload   int64
}

func NewRouter(logsSvc *applogs.Service, timelineSvc *apptimeline.Service, maxUpload int64, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{
		logsSvc:     logsSvc,
		timelineSvc: timelineSvc,
		parser:      domlogs.NewParser(),
		maxUpload:   maxUpload,
	}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/stats", r.wrap(r.handleStats))
		rt.Get("/activities", r.wrap(r.handleActivities))
		rt.Get("/logs", r.wrap(r.handleList))
		rt.Post("/logs/upload", r.wrap(r.handleUpload))
		rt.Get("/logs/{id}", r.wrap(r.handleGet))
		rt.Get("/logs/{id}/analysis", r.wrap(r.handleGetAnalysis))
		rt.Get("/logs/{id}/timeline", r.wrap(r.handleTimeline))
		rt.Post("/search", r.wrap(r.handleSearch))
		rt.Patch("/analysis/{id}/status", r.wrap(r.handleUpdateStatus))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequestError marks client-side validation failures
type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }

func badRequest(err error) error { return badRequestError{err: err} }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var bad badRequestError
			if errors.As(err, &bad) {
				http.Error(w, bad.Error(), http.StatusBadRequest)
				return
			}
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domai.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			if errors.Is(err, domtimeline.ErrMalformedResult) {
				http.Error(w, "analysis result is malformed", http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /api/logs/upload
// multipart form, field "file": txt/log/pcap
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return badRequest(fmt.Errorf("invalid multipart form: %w", err))
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		return badRequest(fmt.Errorf("missing file field: %w", err))
	}
	defer file.Close()

	filename := middleware.SanitizeFilename(header.Filename)
	if err := middleware.ValidateExtension(filename); err != nil {
		return badRequest(err)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	if err := middleware.ValidateFileSize(int64(len(content)), r.maxUpload); err != nil {
		return badRequest(err)
	}

	l, err := r.logsSvc.Upload(req.Context(), applogs.UploadCommand{
		Filename:    filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return err
	}
	middleware.IncrementUploads()

	format := "binary"
	if l.Kind != domlogs.KindPcap {
		format = "generic"
		if r.parser.IsTelecomLog(string(content)) {
			format = "telecom"
		}
	}

	// 🚀 Jalankan analisis di background, biar jalan sampai selesai
	go func(id domlogs.LogID, body string) {
		middleware.IncrementAnalysesRunning()
		defer middleware.DecrementAnalysesRunning()

		if _, err := r.logsSvc.AnalyzeUntilDone(id, body); err != nil {
			fmt.Printf("background analysis error for log=%s: %v\n", id, err)
			middleware.IncrementAnalysesFailed()
		}
	}(l.ID, string(content))

	// 🔙 langsung balikin respons ke client
	resp := map[string]any{
		"log":      l,
		"format":   format,
		"status":   "queued",
		"message":  "analysis started in background",
		"queuedAt": time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(resp)
}

// GET /api/logs?limit=20
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit, 20, 100)

	list, err := r.logsSvc.List(req.Context(), limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /api/logs/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateLogID(id); err != nil {
		return badRequest(err)
	}

	l, err := r.logsSvc.Get(req.Context(), domlogs.LogID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(l)
}

// GET /api/logs/{id}/analysis
func (r *Router) handleGetAnalysis(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateLogID(id); err != nil {
		return badRequest(err)
	}

	a, err := r.logsSvc.GetAnalysis(req.Context(), domlogs.LogID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(a)
}

// GET /api/logs/{id}/timeline
func (r *Router) handleTimeline(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateLogID(id); err != nil {
		return badRequest(err)
	}

	view, err := r.timelineSvc.View(req.Context(), id)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(view)
}

// POST /api/search
// Body: {"query": "...", "limit": 20}
func (r *Router) handleSearch(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidateQuery(body.Query); err != nil {
		return badRequest(err)
	}
	limit := middleware.ValidateLimit(body.Limit, 20, 100)

	list, err := r.logsSvc.Search(req.Context(), body.Query, limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /api/stats
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	stats, err := r.logsSvc.Stats(req.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(stats)
}

// GET /api/activities?limit=10
func (r *Router) handleActivities(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit, 10, 50)

	list, err := r.logsSvc.RecentActivities(req.Context(), limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// PATCH /api/analysis/{id}/status
// Body: {"status": "pending" | "in_progress" | "resolved"}
func (r *Router) handleUpdateStatus(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidateResolutionStatus(body.Status); err != nil {
		return badRequest(err)
	}

	if err := r.logsSvc.UpdateResolution(req.Context(),
		domanalysis.AnalysisID(id), domanalysis.ResolutionStatus(body.Status)); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"id": id, "status": body.Status})
}
