package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/google/uuid"
)

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	patients map[uuid.UUID]*domain.Patient
	err      error
}

func NewMockPatientRepository() *MockPatientRepository {
	return &MockPatientRepository{
		patients: make(map[uuid.UUID]*domain.Patient),
	}
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if m.err != nil {
		return m.err
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	m.patients[patient.ID] = patient
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	patient, ok := m.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return patient, nil
}

func (m *MockPatientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.patients[id]
	return ok, nil
}

// add stores a patient directly and returns it.
func (m *MockPatientRepository) add(age *int, gender *string) *domain.Patient {
	p := &domain.Patient{ID: uuid.New(), Age: age, Gender: gender}
	m.patients[p.ID] = p
	return p
}

// MockMetricRepository is a mock implementation of MetricRepository
type MockMetricRepository struct {
	records    []domain.MetricRecord
	listResult []domain.MetricRecord
	rangeCalls int
	err        error
}

func NewMockMetricRepository() *MockMetricRepository {
	return &MockMetricRepository{}
}

func (m *MockMetricRepository) CreateBatch(ctx context.Context, records []domain.MetricRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, records...)
	return nil
}

func (m *MockMetricRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MetricFilter) ([]domain.MetricRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.MetricRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.MetricRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockMetricRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MetricRecord, error) {
	m.rangeCalls++
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MetricRecord
	for _, r := range m.records {
		if r.UserID == userID && !r.Timestamp.Before(from) && !r.Timestamp.After(to) {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

// MockPredictionCache is an in-memory PredictionCache without expiry
type MockPredictionCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]*domain.PredictionResponse
	invalidated []uuid.UUID
}

func NewMockPredictionCache() *MockPredictionCache {
	return &MockPredictionCache{entries: make(map[uuid.UUID]*domain.PredictionResponse)}
}

func (m *MockPredictionCache) Get(id uuid.UUID) (*domain.PredictionResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resp, ok := m.entries[id]
	return resp, ok
}

func (m *MockPredictionCache) Set(id uuid.UUID, resp *domain.PredictionResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = resp
}

func (m *MockPredictionCache) Invalidate(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	m.invalidated = append(m.invalidated, id)
}

func (m *MockPredictionCache) Close() {}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	resp *domain.PredictionResponse
	err  error
}

func (m *MockPredictionService) Predict(ctx context.Context, patientID uuid.UUID) (*domain.PredictionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *MockPredictionService) Evaluate(ctx context.Context, req *domain.EvaluateRequest) (*domain.PredictionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// MockNarrativeLLM is a mock implementation of llm.NarrativeLLM
type MockNarrativeLLM struct {
	narrative *domain.RiskNarrative
	err       error
	got       *domain.RiskInsightsContext
}

func (m *MockNarrativeLLM) GenerateRiskNarrative(ctx context.Context, insightsCtx *domain.RiskInsightsContext) (*domain.RiskNarrative, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.narrative, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

// dailyRecords returns one record per metric type per day for days days ending at end.
func dailyRecords(patientID uuid.UUID, end time.Time, days int, hr, steps, sleep, calories float64) []domain.MetricRecord {
	var records []domain.MetricRecord
	for d := days - 1; d >= 0; d-- {
		ts := end.AddDate(0, 0, -d).Add(-time.Hour)
		for _, m := range []struct {
			t domain.MetricType
			v float64
		}{
			{domain.MetricHeartRate, hr},
			{domain.MetricSteps, steps},
			{domain.MetricSleep, sleep},
			{domain.MetricCalories, calories},
		} {
			records = append(records, domain.MetricRecord{
				ID:         uuid.New(),
				UserID:     patientID,
				MetricType: m.t,
				Value:      m.v,
				Timestamp:  ts,
			})
		}
	}
	return records
}
