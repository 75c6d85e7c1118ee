package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/llm"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestPredictionHandler_Predict(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name           string
		patientID      string
		predictErr     error
		wantStatusCode int
	}{
		{name: "prediction computed", patientID: patientID.String(), wantStatusCode: http.StatusOK},
		{name: "invalid UUID", patientID: "123", wantStatusCode: http.StatusBadRequest},
		{name: "unknown patient", patientID: patientID.String(), predictErr: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
		{name: "storage failure", patientID: patientID.String(), predictErr: errors.New("connection refused"), wantStatusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictions := &MockPredictionService{}
			if tt.predictErr != nil {
				predictions.predictFunc = func(ctx context.Context, id uuid.UUID) (*domain.PredictionResponse, error) {
					return nil, fmt.Errorf("load patient: %w", tt.predictErr)
				}
			}
			handler := NewPredictionHandler(predictions, &MockInsightsService{})

			req := withPatientID(httptest.NewRequest(http.MethodPost, "/v1/patients/"+tt.patientID+"/predictions", nil), tt.patientID)
			rec := httptest.NewRecorder()

			handler.Predict(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Predict() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.PredictionResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.UserID == nil || *response.UserID != patientID {
					t.Errorf("user_id = %v, want %s", response.UserID, patientID)
				}
			}
		})
	}
}

func TestPredictionHandler_Evaluate(t *testing.T) {
	oversized := `{"records": [` + strings.TrimSuffix(strings.Repeat(`{"timestamp":"2024-01-15T08:00:00Z","metric_type":"steps","value":100},`, 10001), ",") + `]}`

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantRecords    int
	}{
		{
			name: "records and profile",
			body: `{"records": [
				{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "heart_rate", "value": 72},
				{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "glucose", "value": 5.1}
			], "profile": {"age": 50, "gender": "female"}}`,
			wantStatusCode: http.StatusOK,
			wantRecords:    2,
		},
		{name: "empty request", body: `{}`, wantStatusCode: http.StatusOK},
		{name: "invalid JSON", body: `[1, 2`, wantStatusCode: http.StatusBadRequest},
		{name: "invalid profile age", body: `{"profile": {"age": -4}}`, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "too many records", body: oversized, wantStatusCode: http.StatusUnprocessableEntity},
		{
			name:           "record without timestamp",
			body:           `{"records": [{"metric_type": "steps", "value": 4000}]}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative steps",
			body:           `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "steps", "value": -5}]}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "overflowing heart rate",
			body:           `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "heart_rate", "value": 1e308}, {"timestamp": "2024-01-16T08:00:00Z", "metric_type": "heart_rate", "value": 1e308}]}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.EvaluateRequest
			handler := NewPredictionHandler(&MockPredictionService{
				evaluateFunc: func(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error) {
					got = req
					return &domain.PredictionResponse{DataSource: domain.DataSourceRequest}, nil
				},
			}, &MockInsightsService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/predictions/evaluate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Evaluate(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Evaluate() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode != http.StatusOK {
				if got != nil {
					t.Error("service should not be called for a rejected request")
				}
				return
			}
			if got == nil || len(got.Records) != tt.wantRecords {
				t.Fatalf("service received %+v, want %d records", got, tt.wantRecords)
			}
		})
	}
}

func TestPredictionHandler_GetInsights(t *testing.T) {
	tests := []struct {
		name           string
		generateErr    error
		wantStatusCode int
		wantType       string
	}{
		{name: "narrative generated", wantStatusCode: http.StatusOK},
		{name: "unknown patient", generateErr: domain.ErrNotFound, wantStatusCode: http.StatusNotFound, wantType: "not-found"},
		{name: "llm not configured", generateErr: llm.ErrOpenAIUnavailable, wantStatusCode: http.StatusServiceUnavailable, wantType: "service-unavailable"},
		{name: "llm request failed", generateErr: fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest), wantStatusCode: http.StatusBadGateway, wantType: "upstream-error"},
		{name: "llm returned garbage", generateErr: fmt.Errorf("%w: not json", llm.ErrOpenAIResponse), wantStatusCode: http.StatusBadGateway, wantType: "upstream-error"},
		{name: "unexpected failure", generateErr: errors.New("boom"), wantStatusCode: http.StatusInternalServerError, wantType: "internal-error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := &MockInsightsService{}
			if tt.generateErr != nil {
				insights.generateFunc = func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, tt.generateErr
				}
			}
			handler := NewPredictionHandler(&MockPredictionService{}, insights)

			r := chi.NewRouter()
			r.Get("/v1/patients/{patientId}/insights", handler.GetInsights)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/patients/"+uuid.NewString()+"/insights", nil))

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("GetInsights() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantType == "" {
				var response domain.InsightsResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.Narrative.Summary == "" {
					t.Error("expected a narrative summary")
				}
				return
			}

			var body struct {
				Type string `json:"type"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode problem: %v", err)
			}
			if !strings.HasSuffix(body.Type, "/"+tt.wantType) {
				t.Errorf("problem type = %q, want suffix %q", body.Type, tt.wantType)
			}
		})
	}
}
