package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// predictionsTotal counts served predictions by data source and cache outcome
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_risk_predictions_total",
		Help: "Total predictions served by data source and cache outcome",
	}, []string{"data_source", "cache"})

	// predictionDuration tracks time spent building a prediction, cache hits excluded
	predictionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "health_risk_prediction_duration_seconds",
		Help:    "Prediction latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
	}, []string{"data_source"})

	// riskScore tracks the distribution of computed risk scores
	riskScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "health_risk_score",
		Help:    "Distribution of computed risk scores",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	})

	// metricsIngested counts stored measurements by metric type
	metricsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_risk_metrics_ingested_total",
		Help: "Total measurements stored by metric type",
	}, []string{"metric_type"})

	// narrativeErrors counts failed narrative generations by error type
	narrativeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_risk_narrative_errors_total",
		Help: "Total failed risk narrative generations by error type",
	}, []string{"error_type"})
)

const (
	cacheHit      = "hit"
	cacheMiss     = "miss"
	cacheBypassed = "bypassed"
)
