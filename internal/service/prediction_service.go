package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/blaisecz/health-risk/internal/risk"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultPredictionWindowDays is how far back measurements are loaded for a prediction.
	DefaultPredictionWindowDays = 30

	// DefaultMinRecords is the fewest measurements needed to run the engine on real data.
	DefaultMinRecords = 10
)

// PredictionConfig tunes how patient predictions are built.
type PredictionConfig struct {
	WindowDays int
	MinRecords int
}

// PredictionService produces risk predictions.
type PredictionService interface {
	// Predict scores a stored patient from their recent measurements.
	Predict(ctx context.Context, patientID uuid.UUID) (*domain.PredictionResponse, error)
	// Evaluate scores measurements supplied by the caller without touching storage.
	Evaluate(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error)
}

type predictionService struct {
	patientRepo repository.PatientRepository
	metricRepo  repository.MetricRepository
	cache       PredictionCache
	cfg         PredictionConfig
	now         func() time.Time
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(
	patientRepo repository.PatientRepository,
	metricRepo repository.MetricRepository,
	cache PredictionCache,
	cfg PredictionConfig,
) PredictionService {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultPredictionWindowDays
	}
	if cfg.MinRecords <= 0 {
		cfg.MinRecords = DefaultMinRecords
	}
	if cache == nil {
		cache = noopCache{}
	}

	return &predictionService{
		patientRepo: patientRepo,
		metricRepo:  metricRepo,
		cache:       cache,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *predictionService) Predict(ctx context.Context, patientID uuid.UUID) (*domain.PredictionResponse, error) {
	tracer := otel.Tracer("health-risk-api/prediction")
	ctx, span := tracer.Start(ctx, "PredictionService.Predict",
		trace.WithAttributes(
			attribute.String("patient.id", patientID.String()),
			attribute.Int("window.days", s.cfg.WindowDays),
		),
	)
	defer span.End()

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(patientID); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		predictionsTotal.WithLabelValues(string(cached.DataSource), cacheHit).Inc()
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	start := time.Now()
	now := s.now().UTC()
	from := now.AddDate(0, 0, -s.cfg.WindowDays)

	records, err := s.metricRepo.ListByRange(ctx, patientID, from, now)
	if err != nil {
		return nil, fmt.Errorf("load metrics for patient %s: %w", patientID, err)
	}

	var resp *domain.PredictionResponse
	if len(records) < s.cfg.MinRecords {
		resp = s.synthetic(patient, len(records), now)
		slog.InfoContext(ctx, "insufficient data, serving synthetic prediction",
			"patient_id", patientID,
			"records", len(records),
			"min_records", s.cfg.MinRecords,
		)
	} else {
		features := risk.ExtractFeatures(records, patient.Profile())
		resp = &domain.PredictionResponse{
			UserID:      &patient.ID,
			DataSource:  domain.DataSourcePatientMetrics,
			Prediction:  risk.Predict(features, now),
			DebugInfo:   debugInfo(len(records), features),
			GeneratedAt: now,
		}
	}

	s.cache.Set(patientID, resp)
	s.observe(span, resp, start, cacheMiss)

	return resp, nil
}

// synthetic builds a clearly marked placeholder prediction from hash-seeded features.
func (s *predictionService) synthetic(patient *domain.Patient, found int, now time.Time) *domain.PredictionResponse {
	features := syntheticFeatures(patient)
	info := debugInfo(found, features)
	info.DaysWithData = features.DaysWithData
	info.Reason = fmt.Sprintf("only %d records in the last %d days, at least %d required",
		found, s.cfg.WindowDays, s.cfg.MinRecords)

	return &domain.PredictionResponse{
		UserID:      &patient.ID,
		DataSource:  domain.DataSourceSynthetic,
		Prediction:  risk.Predict(features, now),
		DebugInfo:   info,
		GeneratedAt: now,
	}
}

func (s *predictionService) Evaluate(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error) {
	tracer := otel.Tracer("health-risk-api/prediction")
	_, span := tracer.Start(ctx, "PredictionService.Evaluate",
		trace.WithAttributes(attribute.Int("records.count", len(req.Records))),
	)
	defer span.End()

	start := time.Now()
	now := s.now().UTC()

	records := req.ToRecords()
	features := risk.ExtractFeatures(records, req.Profile)

	resp := &domain.PredictionResponse{
		DataSource:  domain.DataSourceRequest,
		Prediction:  risk.Predict(features, now),
		DebugInfo:   debugInfo(len(records), features),
		GeneratedAt: now,
	}
	s.observe(span, resp, start, cacheBypassed)

	return resp, nil
}

func (s *predictionService) observe(span trace.Span, resp *domain.PredictionResponse, start time.Time, cacheOutcome string) {
	source := string(resp.DataSource)
	predictionsTotal.WithLabelValues(source, cacheOutcome).Inc()
	predictionDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	riskScore.Observe(resp.Prediction.RiskScore)

	span.SetAttributes(
		attribute.String("prediction.data_source", source),
		attribute.Float64("prediction.risk_score", resp.Prediction.RiskScore),
		attribute.String("prediction.risk_level", string(resp.Prediction.RiskLevel)),
	)
	if outputJSON, err := json.Marshal(resp.Prediction); err == nil {
		span.SetAttributes(attribute.String("observation.output", string(outputJSON)))
	}
}

func debugInfo(records int, f domain.FeatureVector) domain.DebugInfo {
	return domain.DebugInfo{
		RecordsAnalyzed: records,
		DaysWithData:    f.DaysWithData,
		MetricsAnalyzed: risk.Summarize(f),
	}
}
