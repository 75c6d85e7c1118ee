package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/blaisecz/health-risk/internal/repository"
	"github.com/google/uuid"
)

const seededDays = 30

// span is an inclusive value range; the day's value moves linearly from
// the start range to the end range over the seeded window.
type span struct {
	start, end [2]float64
}

func flat(lo, hi float64) span {
	return span{start: [2]float64{lo, hi}, end: [2]float64{lo, hi}}
}

type demoPatient struct {
	id      uuid.UUID
	age     *int
	gender  *string
	days    int
	metrics map[domain.MetricType]span
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// DemoPatients returns the IDs of the seeded patients in creation order.
func DemoPatients() []uuid.UUID {
	ids := make([]uuid.UUID, len(demoPatients))
	for i, p := range demoPatients {
		ids[i] = p.id
	}
	return ids
}

var demoPatients = []demoPatient{
	{
		// Active adult with healthy vitals
		id:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		age:    intPtr(34),
		gender: strPtr("female"),
		days:   seededDays,
		metrics: map[domain.MetricType]span{
			domain.MetricHeartRate: flat(62, 72),
			domain.MetricSteps:     flat(8000, 11000),
			domain.MetricSleep:     flat(7, 8.5),
			domain.MetricCalories:  flat(1900, 2300),
		},
	},
	{
		// Sedentary, short sleep, elevated heart rate
		id:     uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		age:    intPtr(61),
		gender: strPtr("male"),
		days:   seededDays,
		metrics: map[domain.MetricType]span{
			domain.MetricHeartRate: flat(84, 96),
			domain.MetricSteps:     flat(2500, 4500),
			domain.MetricSleep:     flat(5, 6.2),
			domain.MetricCalories:  flat(2800, 3300),
		},
	},
	{
		// Activity dropping and heart rate creeping up over the month
		id:     uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		age:    intPtr(47),
		gender: strPtr("male"),
		days:   seededDays,
		metrics: map[domain.MetricType]span{
			domain.MetricHeartRate: {start: [2]float64{66, 70}, end: [2]float64{80, 86}},
			domain.MetricSteps:     {start: [2]float64{9000, 10000}, end: [2]float64{3500, 4500}},
			domain.MetricSleep:     {start: [2]float64{7, 8}, end: [2]float64{5.5, 6.5}},
			domain.MetricCalories:  flat(2100, 2500),
		},
	},
	{
		// Too little data; predictions fall back to the synthetic placeholder
		id:   uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		days: 2,
		metrics: map[domain.MetricType]span{
			domain.MetricHeartRate: flat(70, 75),
			domain.MetricSteps:     flat(6000, 7000),
		},
	},
}

// Run seeds demo patients and their measurements ending at now.
// Patients that already exist are skipped, so it is safe to call multiple times.
func Run(ctx context.Context, patients repository.PatientRepository, metrics repository.MetricRepository, now time.Time) error {
	for i, demo := range demoPatients {
		exists, err := patients.Exists(ctx, demo.id)
		if err != nil {
			return fmt.Errorf("failed to check patient %s: %w", demo.id, err)
		}
		if exists {
			slog.InfoContext(ctx, "seed patient already present", "patient_id", demo.id)
			continue
		}

		patient := &domain.Patient{ID: demo.id, Age: demo.age, Gender: demo.gender}
		if err := patients.Create(ctx, patient); err != nil {
			return fmt.Errorf("failed to create patient %s: %w", demo.id, err)
		}

		rng := rand.New(rand.NewSource(int64(i + 1)))
		records := generateRecords(demo, now.UTC(), rng)
		if err := metrics.CreateBatch(ctx, records); err != nil {
			return fmt.Errorf("failed to create metrics for patient %s: %w", demo.id, err)
		}

		slog.InfoContext(ctx, "seeded patient", "patient_id", demo.id, "records", len(records))
	}

	slog.InfoContext(ctx, "seed completed", "patients", len(demoPatients))
	return nil
}

// generateRecords emits one reading per metric per day, oldest day first.
func generateRecords(demo demoPatient, now time.Time, rng *rand.Rand) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, demo.days*len(demo.metrics))
	for d := demo.days - 1; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)
		progress := 0.0
		if demo.days > 1 {
			progress = float64(demo.days-1-d) / float64(demo.days-1)
		}

		for hour, metricType := range domain.KnownMetricTypes {
			s, ok := demo.metrics[metricType]
			if !ok {
				continue
			}
			lo := s.start[0] + (s.end[0]-s.start[0])*progress
			hi := s.start[1] + (s.end[1]-s.start[1])*progress

			records = append(records, domain.MetricRecord{
				ID:         uuid.New(),
				UserID:     demo.id,
				MetricType: metricType,
				Value:      roundTo(lo+rng.Float64()*(hi-lo), metricType),
				Timestamp:  day.Add(-time.Duration(hour+1) * time.Hour),
			})
		}
	}
	return records
}

func roundTo(v float64, metricType domain.MetricType) float64 {
	switch metricType {
	case domain.MetricSleep:
		return float64(int(v*10+0.5)) / 10
	default:
		return float64(int(v + 0.5))
	}
}
