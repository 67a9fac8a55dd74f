package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/prav-arch/telelog/internal/application"
	applogs "github.com/prav-arch/telelog/internal/application/logs"
	apptimeline "github.com/prav-arch/telelog/internal/application/timeline"
	"github.com/prav-arch/telelog/internal/config"
	"github.com/prav-arch/telelog/internal/domain/ai"
	"github.com/prav-arch/telelog/internal/domain/analysis"
	domlogs "github.com/prav-arch/telelog/internal/domain/logs"
	aiclient "github.com/prav-arch/telelog/internal/infra/ai/openai"
	mysqlp "github.com/prav-arch/telelog/internal/infra/db/mysql"
	postgresp "github.com/prav-arch/telelog/internal/infra/db/postgres"
	"github.com/prav-arch/telelog/internal/infra/httpserver"
	minioStore "github.com/prav-arch/telelog/internal/infra/storage"
	"github.com/prav-arch/telelog/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database (mysql atau postgres, sesuai config)
	db, logRepo, analysisRepo, activityRepo, err := connectDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("database connect error: %v", err)
	}
	defer db.Close()

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init analyzer: LLM dengan heuristic fallback, atau mock penuh
	var analyzer ai.Client
	if cfg.LLM.Mock {
		analyzer = &aiclient.Fallback{}
	} else {
		analyzer = &aiclient.Fallback{
			Primary: aiclient.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model),
		}
	}

	// init services
	logsSvc := &applogs.Service{
		Logs:       logRepo,
		Analyses:   analysisRepo,
		Activities: activityRepo,
		Files:      store,
		AI:         analyzer,
		Clock:      application.SystemClock{},
	}
	timelineSvc := &apptimeline.Service{Analyses: analysisRepo}

	checkers := map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(10, 30))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Mount("/", httpserver.NewRouter(logsSvc, timelineSvc, cfg.MaxUploadBytes(), checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func connectDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, domlogs.Repository, analysis.Repository, analysis.ActivityRepository, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return db, postgresp.NewLogRepository(db), postgresp.NewAnalysisRepository(db), postgresp.NewActivityRepository(db), nil
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return db, mysqlp.NewLogRepository(db), mysqlp.NewAnalysisRepository(db), mysqlp.NewActivityRepository(db), nil
	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}
