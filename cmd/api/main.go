// Health Risk API
//
// REST API for wearable metric ingestion and rule-based health risk prediction.
//
//	@title			Health Risk API
//	@version		1.0
//	@description	Wearable metric ingestion and rule-based health risk prediction.
//
//	@BasePath	/v1
//
//	@tag.name			patients
//	@tag.description	Patient registration endpoints
//
//	@tag.name			metrics
//	@tag.description	Wearable measurement ingestion and history
//
//	@tag.name			predictions
//	@tag.description	Risk scoring and narratives
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/health-risk/internal/api"
	"github.com/blaisecz/health-risk/internal/api/handler"
	"github.com/blaisecz/health-risk/internal/config"
	"github.com/blaisecz/health-risk/internal/llm"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/blaisecz/health-risk/internal/seed"
	"github.com/blaisecz/health-risk/internal/service"
	"github.com/blaisecz/health-risk/internal/telemetry"
)

const serviceName = "health-risk-api"

func main() {
	// Load configuration
	cfg := config.Load()
	config.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		fatal("failed to initialize tracing", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		fatal("failed to connect to database", err)
	}

	if err := config.Migrate(db); err != nil {
		fatal("failed to migrate database", err)
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	if cfg.Seed {
		slog.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, patientRepo, metricRepo, time.Now()); err != nil {
			fatal("failed to seed database", err)
		}
	}

	// Initialize services
	cache, err := service.NewPredictionCache(cfg.PredictionCacheTTL)
	if err != nil {
		fatal("failed to create prediction cache", err)
	}
	defer cache.Close()

	patientService := service.NewPatientService(patientRepo)
	metricService := service.NewMetricService(metricRepo, patientRepo, cache)
	predictionService := service.NewPredictionService(patientRepo, metricRepo, cache, service.PredictionConfig{
		WindowDays: cfg.PredictionWindowDays,
		MinRecords: cfg.PredictionMinRecords,
	})

	// OpenAI client may be nil when not configured; a nil client reports ErrOpenAIUnavailable
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIRiskInsightsModel)
	if openaiClient == nil {
		slog.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(predictionService, openaiClient)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientService)
	metricHandler := handler.NewMetricHandler(metricService)
	predictionHandler := handler.NewPredictionHandler(predictionService, insightsService)

	// Setup router
	router := api.NewRouter(patientHandler, metricHandler, predictionHandler, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server failed", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
