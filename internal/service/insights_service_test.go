package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/llm"
	"github.com/google/uuid"
)

func TestInsightsService_Generate(t *testing.T) {
	prediction := &domain.PredictionResponse{
		DataSource: domain.DataSourcePatientMetrics,
		Prediction: domain.PredictionResult{RiskScore: 0.45, RiskLevel: domain.RiskLevelMedium},
		DebugInfo: domain.DebugInfo{
			MetricsAnalyzed: domain.MetricsAnalyzed{HeartRateAvg: 82.1, StepsAvg: 5400},
		},
	}
	narrative := &domain.RiskNarrative{
		Summary:      "Moderate risk driven by low activity.",
		Observations: []string{"Steps average 5400"},
		Guidance:     []string{"Walk after meals"},
	}

	llmClient := &MockNarrativeLLM{narrative: narrative}
	svc := NewInsightsService(&MockPredictionService{resp: prediction}, llmClient)

	resp, err := svc.Generate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Narrative.Summary != narrative.Summary {
		t.Errorf("Summary = %q, want %q", resp.Narrative.Summary, narrative.Summary)
	}
	if resp.Prediction.Prediction.RiskScore != 0.45 {
		t.Errorf("RiskScore = %v, want 0.45", resp.Prediction.Prediction.RiskScore)
	}
	if llmClient.got == nil || llmClient.got.Metrics.StepsAvg != 5400 || llmClient.got.DataSource != domain.DataSourcePatientMetrics {
		t.Errorf("LLM context = %+v", llmClient.got)
	}
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name          string
		predictionErr error
		llmErr        error
		wantErr       error
		wantLLMCalled bool
	}{
		{
			name:          "patient not found",
			predictionErr: domain.ErrNotFound,
			wantErr:       domain.ErrNotFound,
		},
		{
			name:          "llm not configured",
			llmErr:        llm.ErrOpenAIUnavailable,
			wantErr:       llm.ErrOpenAIUnavailable,
			wantLLMCalled: true,
		},
		{
			name:          "llm returned garbage",
			llmErr:        llm.ErrOpenAIResponse,
			wantErr:       llm.ErrOpenAIResponse,
			wantLLMCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llmClient := &MockNarrativeLLM{err: tt.llmErr}
			predictions := &MockPredictionService{
				resp: &domain.PredictionResponse{DataSource: domain.DataSourceSynthetic},
				err:  tt.predictionErr,
			}
			svc := NewInsightsService(predictions, llmClient)

			_, err := svc.Generate(context.Background(), uuid.New())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if called := llmClient.got != nil; called != tt.wantLLMCalled {
				t.Errorf("LLM called = %v, want %v", called, tt.wantLLMCalled)
			}
		})
	}
}

func TestInsightsService_Generate_NilOpenAIClient(t *testing.T) {
	var client *llm.OpenAIClient
	svc := NewInsightsService(&MockPredictionService{resp: &domain.PredictionResponse{}}, client)

	_, err := svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Fatalf("error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestNarrativeErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{llm.ErrOpenAIUnavailable, "unavailable"},
		{llm.ErrOpenAIRequest, "request"},
		{llm.ErrOpenAIResponse, "response"},
		{errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		if got := narrativeErrorType(tt.err); got != tt.want {
			t.Errorf("narrativeErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
