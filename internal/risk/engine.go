package risk

import (
	"time"

	"github.com/blaisecz/health-risk/internal/domain"
)

const (
	// ForecastDays is the number of days projected by Forecast.
	ForecastDays = 7

	// Confidence is reported with every prediction.
	Confidence = 0.85

	confidenceBand = 0.1
)

// Predict scores f and builds the full prediction relative to now.
// It is deterministic: equal inputs give identical results.
func Predict(f domain.FeatureVector, now time.Time) domain.PredictionResult {
	score := Score(f)

	return domain.PredictionResult{
		RiskScore:           round(score, 3),
		RiskLevel:           Level(score),
		Confidence:          Confidence,
		ContributingFactors: Factors(f),
		Recommendations:     Recommendations(f),
		PredictedTrend:      Forecast(score, f, now),
	}
}

// Forecast extrapolates score linearly from the metric trends for the next ForecastDays
// calendar days after now. The point estimate is clamped first and the ±0.1 band is
// offset from the clamped value.
func Forecast(score float64, f domain.FeatureVector, now time.Time) []domain.TrendPoint {
	daily := f.TrendHeartRate*0.3 + f.TrendSteps*-0.0001 + f.TrendSleep*-0.05

	points := make([]domain.TrendPoint, 0, ForecastDays)
	for i := 1; i <= ForecastDays; i++ {
		adjustment := daily * float64(i)
		predicted := clamp01(score + adjustment*0.01)

		points = append(points, domain.TrendPoint{
			Date:            now.AddDate(0, 0, i).Format(dateLayout),
			PredictedRisk:   round(predicted, 3),
			ConfidenceLower: round(clamp01(predicted-confidenceBand), 3),
			ConfidenceUpper: round(clamp01(predicted+confidenceBand), 3),
		})
	}
	return points
}
