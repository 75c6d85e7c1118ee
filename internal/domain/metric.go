package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricType identifies the kind of wearable measurement.
// @Description Kind of measurement: heart_rate (bpm), steps (count), sleep (hours), calories (kcal).
type MetricType string

const (
	MetricHeartRate MetricType = "heart_rate"
	MetricSteps     MetricType = "steps"
	MetricSleep     MetricType = "sleep"
	MetricCalories  MetricType = "calories"
)

// KnownMetricTypes lists the metric types that feed the risk engine, in evaluation order.
var KnownMetricTypes = []MetricType{MetricHeartRate, MetricSteps, MetricSleep, MetricCalories}

// IsKnown reports whether t is one of the supported metric types.
func (t MetricType) IsKnown() bool {
	for _, known := range KnownMetricTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MaxMetricValue bounds any measurement value, including unknown metric types.
const MaxMetricValue = 1_000_000

// metricLimits are the largest plausible values per known metric type.
var metricLimits = map[MetricType]float64{
	MetricHeartRate: 300,
	MetricSteps:     200_000,
	MetricSleep:     24,
	MetricCalories:  20_000,
}

// Limit returns the largest accepted value for t. Unknown types report false.
func (t MetricType) Limit() (float64, bool) {
	limit, ok := metricLimits[t]
	return limit, ok
}

// MetricRecord is a single timestamped measurement from a wearable device.
type MetricRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_metric_records_user_ts" json:"user_id"`
	MetricType MetricType `gorm:"type:varchar(32);not null" json:"metric_type"`
	Value      float64    `gorm:"not null" json:"value"`
	Timestamp  time.Time  `gorm:"not null;index:idx_metric_records_user_ts,sort:desc" json:"timestamp"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Patient Patient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MetricRecord) TableName() string {
	return "metric_records"
}

// CreateMetricRequest is a single measurement in an ingest batch.
// @Description A single wearable measurement.
type CreateMetricRequest struct {
	// Measurement time in RFC3339 format
	Timestamp time.Time `json:"timestamp" validate:"required" example:"2024-01-15T08:00:00Z"`
	// Metric type
	MetricType MetricType `json:"metric_type" validate:"required,metric_type" example:"heart_rate" enums:"heart_rate,steps,sleep,calories"`
	// Measured value (bpm, steps, hours or kcal)
	Value float64 `json:"value" validate:"gte=0,lte=1000000" example:"72"`
}

// CreateMetricsRequest is the request body for ingesting measurements.
// @Description Batch of wearable measurements for a patient.
type CreateMetricsRequest struct {
	Records []CreateMetricRequest `json:"records" validate:"required,min=1,max=1000,dive"`
}

// MetricResponse is the response body for a stored measurement.
// @Description Stored wearable measurement.
type MetricResponse struct {
	ID         uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	MetricType MetricType `json:"metric_type" example:"steps"`
	Value      float64    `json:"value" example:"8500"`
	Timestamp  time.Time  `json:"timestamp" example:"2024-01-15T08:00:00Z"`
	CreatedAt  time.Time  `json:"created_at" example:"2024-01-15T08:00:05Z"`
}

func (m *MetricRecord) ToResponse() MetricResponse {
	return MetricResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		MetricType: m.MetricType,
		Value:      m.Value,
		Timestamp:  m.Timestamp,
		CreatedAt:  m.CreatedAt,
	}
}

// MetricListResponse is the response body for listing measurements.
// @Description Paginated list of measurements.
type MetricListResponse struct {
	// Array of measurements, newest first
	Data []MetricResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// MetricFilter contains filter parameters for listing measurements
type MetricFilter struct {
	MetricType MetricType
	From       *time.Time
	To         *time.Time
	Limit      int
	Cursor     string
}

// DailySummary holds the per-day average of each metric type.
// @Description Average of each metric on a single calendar day (0 when the day has no data for a metric).
type DailySummary struct {
	Date       string  `json:"date" example:"2024-01-15"`
	HeartRate  float64 `json:"heart_rate" example:"71.4"`
	Steps      float64 `json:"steps" example:"8450"`
	SleepHours float64 `json:"sleep_hours" example:"7.2"`
	Calories   float64 `json:"calories" example:"2210"`
	Records    int     `json:"records" example:"4"`
}

// HistoryResponse is the response for the metric history endpoint.
// @Description Daily metric averages over a window.
type HistoryResponse struct {
	From time.Time      `json:"from" example:"2024-01-01T00:00:00Z"`
	To   time.Time      `json:"to" example:"2024-01-31T00:00:00Z"`
	Days []DailySummary `json:"days"`
}
