package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockPatientService is a mock implementation of PatientService
type MockPatientService struct {
	createFunc  func(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
}

func (m *MockPatientService) Create(ctx context.Context, req *domain.CreatePatientRequest) (*domain.Patient, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Patient{ID: uuid.New(), Age: req.Age, Gender: req.Gender, CreatedAt: time.Now()}, nil
}

func (m *MockPatientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMetricService is a mock implementation of MetricService
type MockMetricService struct {
	recordFunc  func(ctx context.Context, patientID uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error)
	listFunc    func(ctx context.Context, patientID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error)
	historyFunc func(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.HistoryResponse, error)
}

func (m *MockMetricService) Record(ctx context.Context, patientID uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, patientID, req)
	}
	records := make([]domain.MetricRecord, len(req.Records))
	for i, in := range req.Records {
		records[i] = domain.MetricRecord{
			ID:         uuid.New(),
			UserID:     patientID,
			MetricType: in.MetricType,
			Value:      in.Value,
			Timestamp:  in.Timestamp.UTC(),
			CreatedAt:  time.Now(),
		}
	}
	return records, nil
}

func (m *MockMetricService) List(ctx context.Context, patientID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, patientID, filter)
	}
	return &domain.MetricListResponse{Data: []domain.MetricResponse{}}, nil
}

func (m *MockMetricService) History(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.HistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, patientID, windowDays)
	}
	return &domain.HistoryResponse{Days: []domain.DailySummary{}}, nil
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	predictFunc  func(ctx context.Context, patientID uuid.UUID) (*domain.PredictionResponse, error)
	evaluateFunc func(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, patientID uuid.UUID) (*domain.PredictionResponse, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, patientID)
	}
	return &domain.PredictionResponse{
		UserID:     &patientID,
		DataSource: domain.DataSourcePatientMetrics,
		Prediction: domain.PredictionResult{RiskScore: 0.2, RiskLevel: domain.RiskLevelLow},
	}, nil
}

func (m *MockPredictionService) Evaluate(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error) {
	if m.evaluateFunc != nil {
		return m.evaluateFunc(ctx, req)
	}
	return &domain.PredictionResponse{
		DataSource: domain.DataSourceRequest,
		DebugInfo:  domain.DebugInfo{RecordsAnalyzed: len(req.Records)},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, patientID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, patientID)
	}
	return &domain.InsightsResponse{
		Narrative: domain.RiskNarrative{Summary: "Low risk overall."},
	}, nil
}

// withPatientID attaches the chi {patientId} URL param to req.
func withPatientID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("patientId", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
