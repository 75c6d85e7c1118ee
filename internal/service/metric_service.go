package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/blaisecz/health-risk/internal/risk"
	"github.com/blaisecz/health-risk/pkg/pagination"
	"github.com/google/uuid"
)

const (
	// DefaultHistoryWindowDays is the default window for the daily history.
	DefaultHistoryWindowDays = 30

	// MaxHistoryWindowDays is the longest history window that can be requested.
	MaxHistoryWindowDays = 365
)

// MetricService stores and reads wearable measurements.
type MetricService interface {
	// Record stores a batch of measurements for a patient.
	Record(ctx context.Context, patientID uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error)
	// List returns a page of measurements, newest first.
	List(ctx context.Context, patientID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error)
	// History returns per-day averages of each metric over the last windowDays days.
	History(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.HistoryResponse, error)
}

type metricService struct {
	repo        repository.MetricRepository
	patientRepo repository.PatientRepository
	cache       PredictionCache
	now         func() time.Time
}

// NewMetricService creates a new MetricService. Recording measurements evicts the
// patient's cached prediction.
func NewMetricService(repo repository.MetricRepository, patientRepo repository.PatientRepository, cache PredictionCache) MetricService {
	if cache == nil {
		cache = noopCache{}
	}
	return &metricService{
		repo:        repo,
		patientRepo: patientRepo,
		cache:       cache,
		now:         time.Now,
	}
}

func (s *metricService) Record(ctx context.Context, patientID uuid.UUID, req *domain.CreateMetricsRequest) ([]domain.MetricRecord, error) {
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}

	records := make([]domain.MetricRecord, len(req.Records))
	for i, in := range req.Records {
		if !in.MetricType.IsKnown() {
			return nil, fmt.Errorf("%w: unsupported metric type %q", domain.ErrInvalidInput, in.MetricType)
		}
		records[i] = domain.MetricRecord{
			ID:         uuid.New(),
			UserID:     patientID,
			MetricType: in.MetricType,
			Value:      in.Value,
			Timestamp:  in.Timestamp.UTC(),
		}
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	for _, r := range records {
		metricsIngested.WithLabelValues(string(r.MetricType)).Inc()
	}
	s.cache.Invalidate(patientID)

	return records, nil
}

func (s *metricService) List(ctx context.Context, patientID uuid.UUID, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, patientID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.MetricListResponse{
		Data: make([]domain.MetricResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{ID: last.ID, Timestamp: last.Timestamp}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *metricService) History(ctx context.Context, patientID uuid.UUID, windowDays int) (*domain.HistoryResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}
	if windowDays > MaxHistoryWindowDays {
		return nil, fmt.Errorf("%w: window of %d days exceeds %d", domain.ErrInvalidInput, windowDays, MaxHistoryWindowDays)
	}
	if err := s.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}

	to := s.now().UTC()
	from := to.AddDate(0, 0, -windowDays)

	records, err := s.repo.ListByRange(ctx, patientID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.HistoryResponse{
		From: from,
		To:   to,
		Days: dailySummaries(records),
	}, nil
}

func (s *metricService) ensurePatient(ctx context.Context, patientID uuid.UUID) error {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// dailySummaries groups records by UTC date and averages each metric per day.
// Days are returned oldest first; days without records are omitted.
func dailySummaries(records []domain.MetricRecord) []domain.DailySummary {
	byDay := make(map[string][]domain.MetricRecord)
	for _, r := range records {
		day := r.Timestamp.UTC().Format(time.DateOnly)
		byDay[day] = append(byDay[day], r)
	}

	days := make([]domain.DailySummary, 0, len(byDay))
	for day, dayRecords := range byDay {
		avg := risk.Summarize(risk.ExtractFeatures(dayRecords, domain.UserProfile{}))
		days = append(days, domain.DailySummary{
			Date:       day,
			HeartRate:  avg.HeartRateAvg,
			Steps:      avg.StepsAvg,
			SleepHours: avg.SleepAvg,
			Calories:   avg.CaloriesAvg,
			Records:    len(dayRecords),
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}
