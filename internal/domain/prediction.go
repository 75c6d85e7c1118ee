package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAge is used when a profile carries no age.
	DefaultAge = 35
	// DefaultGender is used when a profile carries no gender.
	DefaultGender = "male"
)

// UserProfile holds the static demographic attributes of a subject.
// @Description Demographics used for feature extraction; absent fields fall back to age 35, gender male.
type UserProfile struct {
	Age    *int    `json:"age,omitempty" validate:"omitempty,min=0,max=130" example:"35"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,max=32" example:"male"`
}

// AgeOrDefault returns the profile age, or DefaultAge when absent.
func (p UserProfile) AgeOrDefault() int {
	if p.Age == nil {
		return DefaultAge
	}
	return *p.Age
}

// GenderEncoded maps gender to 1 for male and 0 for anything else.
// The comparison is case-insensitive and an absent gender counts as male.
func (p UserProfile) GenderEncoded() int {
	gender := DefaultGender
	if p.Gender != nil {
		gender = *p.Gender
	}
	if strings.EqualFold(gender, "male") {
		return 1
	}
	return 0
}

// FeatureVector is the fixed 17-field summary of a subject's recent metrics.
// @Description Aggregated features computed from raw measurements and demographics.
type FeatureVector struct {
	HeartRateMean  float64 `json:"heart_rate_mean" example:"72.5"`
	HeartRateStd   float64 `json:"heart_rate_std" example:"6.1"`
	HeartRateMax   float64 `json:"heart_rate_max" example:"95"`
	HeartRateMin   float64 `json:"heart_rate_min" example:"58"`
	StepsMean      float64 `json:"steps_mean" example:"7800"`
	StepsStd       float64 `json:"steps_std" example:"1500"`
	StepsTotal     float64 `json:"steps_total" example:"234000"`
	SleepHoursMean float64 `json:"sleep_hours_mean" example:"7.1"`
	SleepHoursStd  float64 `json:"sleep_hours_std" example:"0.7"`
	CaloriesMean   float64 `json:"calories_mean" example:"2250"`
	CaloriesStd    float64 `json:"calories_std" example:"280"`
	Age            int     `json:"age" example:"35"`
	GenderEncoded  int     `json:"gender_encoded" example:"1"`
	DaysWithData   int     `json:"days_with_data" example:"30"`
	TrendHeartRate float64 `json:"trend_heart_rate" example:"0.1"`
	TrendSteps     float64 `json:"trend_steps" example:"-12.5"`
	TrendSleep     float64 `json:"trend_sleep" example:"0.01"`
}

// RiskLevel is the banded form of a risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// FactorStatus is the qualitative label attached to a contributing factor.
type FactorStatus string

const (
	FactorStatusGood     FactorStatus = "good"
	FactorStatusWarning  FactorStatus = "warning"
	FactorStatusCritical FactorStatus = "critical"
)

// ContributingFactor explains how far one metric deviates from its baseline.
// @Description Metric deviation from baseline with a qualitative status.
type ContributingFactor struct {
	Feature MetricType   `json:"feature" example:"steps"`
	Impact  float64      `json:"impact" example:"0.38"`
	Status  FactorStatus `json:"status" example:"warning" enums:"good,warning,critical"`
}

// TrendPoint is one day of the risk forecast.
// @Description Forecast risk for a calendar day with a confidence band.
type TrendPoint struct {
	Date            string  `json:"date" example:"2024-01-16"`
	PredictedRisk   float64 `json:"predicted_risk" example:"0.352"`
	ConfidenceLower float64 `json:"confidence_lower" example:"0.252"`
	ConfidenceUpper float64 `json:"confidence_upper" example:"0.452"`
}

// PredictionResult is the output of the risk engine.
// @Description Risk score, explanation, recommendations and a 7-day forecast.
type PredictionResult struct {
	RiskScore           float64              `json:"risk_score" example:"0.35"`
	RiskLevel           RiskLevel            `json:"risk_level" example:"medium" enums:"low,medium,high"`
	Confidence          float64              `json:"confidence" example:"0.85"`
	ContributingFactors []ContributingFactor `json:"contributing_factors"`
	Recommendations     []string             `json:"recommendations"`
	PredictedTrend      []TrendPoint         `json:"predicted_trend"`
}

// DataSource tells the caller where a prediction came from.
type DataSource string

const (
	// DataSourcePatientMetrics marks a prediction computed from stored measurements.
	DataSourcePatientMetrics DataSource = "patient_metrics"
	// DataSourceSynthetic marks a placeholder prediction used when too little data exists.
	DataSourceSynthetic DataSource = "synthetic"
	// DataSourceRequest marks a prediction computed from measurements supplied in the request.
	DataSourceRequest DataSource = "request"
)

// MetricsAnalyzed holds rounded averages of the metrics that produced a prediction.
type MetricsAnalyzed struct {
	HeartRateAvg float64 `json:"heart_rate_avg" example:"72.4"`
	StepsAvg     float64 `json:"steps_avg" example:"7812"`
	SleepAvg     float64 `json:"sleep_avg" example:"6.9"`
	CaloriesAvg  float64 `json:"calories_avg" example:"2240"`
}

// DebugInfo describes the input behind a prediction.
// @Description Diagnostic details about the analyzed data.
type DebugInfo struct {
	RecordsAnalyzed int             `json:"records_analyzed" example:"120"`
	DaysWithData    int             `json:"days_with_data" example:"30"`
	MetricsAnalyzed MetricsAnalyzed `json:"metrics_analyzed"`
	Reason          string          `json:"reason,omitempty" example:"only 4 records in the last 30 days"`
}

// PredictionResponse is the response body for prediction endpoints.
// @Description Health risk prediction with provenance.
type PredictionResponse struct {
	UserID      *uuid.UUID       `json:"user_id,omitempty" example:"660e8400-e29b-41d4-a716-446655440001"`
	DataSource  DataSource       `json:"data_source" example:"patient_metrics" enums:"patient_metrics,synthetic,request"`
	Prediction  PredictionResult `json:"prediction"`
	DebugInfo   DebugInfo        `json:"debug_info"`
	GeneratedAt time.Time        `json:"generated_at" example:"2024-01-15T08:00:00Z"`
}

// MetricInput is a measurement supplied inline for stateless evaluation.
// Unknown metric types are accepted and only count towards days with data.
type MetricInput struct {
	Timestamp  time.Time  `json:"timestamp" validate:"required" example:"2024-01-15T08:00:00Z"`
	MetricType MetricType `json:"metric_type" example:"heart_rate"`
	Value      float64    `json:"value" validate:"gte=0,lte=1000000" example:"72"`
}

// EvaluateRequest is the request body for stateless evaluation.
// @Description Measurements and profile to score without touching storage.
type EvaluateRequest struct {
	Records []MetricInput `json:"records" validate:"max=10000,dive"`
	Profile UserProfile   `json:"profile"`
}

// ToRecords converts the inline measurements to metric records, preserving order.
func (r *EvaluateRequest) ToRecords() []MetricRecord {
	records := make([]MetricRecord, 0, len(r.Records))
	for _, in := range r.Records {
		records = append(records, MetricRecord{
			MetricType: in.MetricType,
			Value:      in.Value,
			Timestamp:  in.Timestamp,
		})
	}
	return records
}

// RiskNarrative contains the structured output from the LLM.
// @Description LLM-generated, non-medical explanation of a prediction.
type RiskNarrative struct {
	Summary      string   `json:"summary" example:"Your activity has dropped this month while sleep stayed stable..."`
	Observations []string `json:"observations" example:"[\"Average steps are below the 7000 target\"]"`
	Guidance     []string `json:"guidance" example:"[\"Add a 20 minute walk after lunch\"]"`
}

// RiskInsightsContext is the context object sent to the LLM.
type RiskInsightsContext struct {
	DataSource DataSource       `json:"data_source"`
	Metrics    MetricsAnalyzed  `json:"metrics_analyzed"`
	Prediction PredictionResult `json:"prediction"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Prediction with an LLM narrative.
type InsightsResponse struct {
	Prediction PredictionResponse `json:"prediction"`
	Narrative  RiskNarrative      `json:"narrative"`
	// Trace ID of the request (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}
