package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/pkg/pagination"
	"github.com/google/uuid"
)

func TestMetricHandler_Create(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name           string
		patientID      string
		body           string
		mockService    *MockMetricService
		wantStatusCode int
		wantRecords    int
	}{
		{
			name:      "valid batch",
			patientID: patientID.String(),
			body: `{"records": [
				{"timestamp": "2024-01-15T08:00:00+02:00", "metric_type": "heart_rate", "value": 72},
				{"timestamp": "2024-01-15T09:00:00Z", "metric_type": "steps", "value": 1200}
			]}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusCreated,
			wantRecords:    2,
		},
		{
			name:           "invalid patient ID",
			patientID:      "not-a-uuid",
			body:           `{"records": []}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			patientID:      patientID.String(),
			body:           `{"records": [`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "empty batch",
			patientID:      patientID.String(),
			body:           `{"records": []}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unsupported metric type",
			patientID:      patientID.String(),
			body:           `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "glucose", "value": 5.4}]}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "heart rate above plausible limit",
			patientID:      patientID.String(),
			body:           `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "heart_rate", "value": 1e308}]}`,
			mockService:    &MockMetricService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "unknown patient",
			patientID: patientID.String(),
			body:      `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "sleep", "value": 7}]}`,
			mockService: &MockMetricService{
				recordFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:      "service rejects input",
			patientID: patientID.String(),
			body:      `{"records": [{"timestamp": "2024-01-15T08:00:00Z", "metric_type": "sleep", "value": 7}]}`,
			mockService: &MockMetricService{
				recordFunc: func(ctx context.Context, id uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error) {
					return nil, fmt.Errorf("%w: unsupported metric type", domain.ErrInvalidInput)
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMetricHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/patients/"+tt.patientID+"/metrics", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withPatientID(req, tt.patientID)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var response domain.MetricListResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(response.Data) != tt.wantRecords {
					t.Fatalf("got %d records, want %d", len(response.Data), tt.wantRecords)
				}
				if got := response.Data[0].Timestamp; !got.Equal(time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)) {
					t.Errorf("timestamp = %v, want 06:00 UTC", got)
				}
			}
		})
	}
}

func TestMetricHandler_List(t *testing.T) {
	patientID := uuid.New()
	cursor := pagination.Cursor{ID: uuid.New(), Timestamp: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}
	validCursor := cursor.Encode()

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		checkFilter    func(t *testing.T, f domain.MetricFilter)
	}{
		{
			name:           "no filters",
			query:          "",
			wantStatusCode: http.StatusOK,
			checkFilter: func(t *testing.T, f domain.MetricFilter) {
				if f.MetricType != "" || f.From != nil || f.To != nil || f.Limit != 0 || f.Cursor != "" {
					t.Errorf("filter = %+v, want zero value", f)
				}
			},
		},
		{
			name:           "all filters",
			query:          "?metric_type=steps&from=2024-01-01T00:00:00Z&to=2024-01-31T00:00:00Z&limit=20&cursor=" + url.QueryEscape(validCursor),
			wantStatusCode: http.StatusOK,
			checkFilter: func(t *testing.T, f domain.MetricFilter) {
				if f.MetricType != domain.MetricSteps || f.Limit != 20 || f.Cursor != validCursor {
					t.Errorf("filter = %+v", f)
				}
				if f.From == nil || !f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("from = %v", f.From)
				}
				if f.To == nil || !f.To.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("to = %v", f.To)
				}
			},
		},
		{name: "unknown metric type", query: "?metric_type=glucose", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid from", query: "?from=yesterday", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "limit too large", query: "?limit=501", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "limit not a number", query: "?limit=ten", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid cursor", query: "?cursor=not-base64!", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter *domain.MetricFilter
			handler := NewMetricHandler(&MockMetricService{
				listFunc: func(ctx context.Context, id uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
					gotFilter = &filter
					return &domain.MetricListResponse{Data: []domain.MetricResponse{}}, nil
				},
			})

			req := withPatientID(httptest.NewRequest(http.MethodGet, "/v1/patients/"+patientID.String()+"/metrics"+tt.query, nil), patientID.String())
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.checkFilter != nil {
				if gotFilter == nil {
					t.Fatal("service was not called")
				}
				tt.checkFilter(t, *gotFilter)
			} else if gotFilter != nil {
				t.Error("service should not be called for invalid query")
			}
		})
	}
}

func TestMetricHandler_History(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name           string
		query          string
		historyErr     error
		wantStatusCode int
		wantWindow     int
	}{
		{name: "default window", query: "", wantStatusCode: http.StatusOK, wantWindow: 30},
		{name: "explicit window", query: "?window_days=7", wantStatusCode: http.StatusOK, wantWindow: 7},
		{name: "maximum window", query: "?window_days=365", wantStatusCode: http.StatusOK, wantWindow: 365},
		{name: "window too large", query: "?window_days=366", wantStatusCode: http.StatusBadRequest},
		{name: "zero window", query: "?window_days=0", wantStatusCode: http.StatusBadRequest},
		{name: "not a number", query: "?window_days=week", wantStatusCode: http.StatusBadRequest},
		{name: "unknown patient", query: "", historyErr: domain.ErrNotFound, wantStatusCode: http.StatusNotFound, wantWindow: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWindow := 0
			handler := NewMetricHandler(&MockMetricService{
				historyFunc: func(ctx context.Context, id uuid.UUID, windowDays int) (*domain.HistoryResponse, error) {
					gotWindow = windowDays
					if tt.historyErr != nil {
						return nil, tt.historyErr
					}
					return &domain.HistoryResponse{Days: []domain.DailySummary{{Date: "2024-01-15", Steps: 8000, Records: 4}}}, nil
				},
			})

			req := withPatientID(httptest.NewRequest(http.MethodGet, "/v1/patients/"+patientID.String()+"/metrics/history"+tt.query, nil), patientID.String())
			rec := httptest.NewRecorder()

			handler.History(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("History() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if gotWindow != tt.wantWindow {
				t.Errorf("window_days passed = %d, want %d", gotWindow, tt.wantWindow)
			}
		})
	}
}
