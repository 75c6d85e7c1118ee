package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/llm"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService explains predictions in plain language.
type InsightsService interface {
	// Generate predicts the patient's risk and asks the LLM to narrate it.
	Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	predictions PredictionService
	llmClient   llm.NarrativeLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(predictions PredictionService, llmClient llm.NarrativeLLM) InsightsService {
	return &insightsService{
		predictions: predictions,
		llmClient:   llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("health-risk-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("patient.id", patientID.String())),
	)
	defer span.End()

	prediction, err := s.predictions.Predict(ctx, patientID)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.RiskInsightsContext{
		DataSource: prediction.DataSource,
		Metrics:    prediction.DebugInfo.MetricsAnalyzed,
		Prediction: prediction.Prediction,
	}

	narrative, err := s.llmClient.GenerateRiskNarrative(ctx, insightsCtx)
	if err != nil {
		narrativeErrors.WithLabelValues(narrativeErrorType(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "narrative generation failed")
		slog.WarnContext(ctx, "risk narrative generation failed", "patient_id", patientID, "error", err)
		return nil, err
	}

	response := &domain.InsightsResponse{
		Prediction: *prediction,
		Narrative:  *narrative,
	}
	if sc := span.SpanContext(); sc.HasTraceID() {
		response.TraceID = sc.TraceID().String()
	}

	return response, nil
}

func narrativeErrorType(err error) string {
	switch {
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		return "unavailable"
	case errors.Is(err, llm.ErrOpenAIRequest):
		return "request"
	case errors.Is(err, llm.ErrOpenAIResponse):
		return "response"
	default:
		return "other"
	}
}
