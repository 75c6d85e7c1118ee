// Package risk turns wearable measurements into a feature vector and scores it with a
// fixed additive rule table. Everything in this package is a pure function of its inputs.
package risk

import (
	"github.com/blaisecz/health-risk/internal/domain"
)

const dateLayout = "2006-01-02"

// ExtractFeatures summarises records and profile into a FeatureVector.
//
// Records are partitioned by metric type in their given order; trends are computed over
// that order, so callers should pass records sorted chronologically. Records of an unknown
// metric type only count towards DaysWithData. The function never fails: missing data
// produces zero-valued features.
func ExtractFeatures(records []domain.MetricRecord, profile domain.UserProfile) domain.FeatureVector {
	series := partition(records)
	heartRate := series[domain.MetricHeartRate]
	steps := series[domain.MetricSteps]
	sleep := series[domain.MetricSleep]
	calories := series[domain.MetricCalories]

	return domain.FeatureVector{
		HeartRateMean:  mean(heartRate),
		HeartRateStd:   stdDev(heartRate),
		HeartRateMax:   maxOf(heartRate),
		HeartRateMin:   minOf(heartRate),
		StepsMean:      mean(steps),
		StepsStd:       stdDev(steps),
		StepsTotal:     sum(steps),
		SleepHoursMean: mean(sleep),
		SleepHoursStd:  stdDev(sleep),
		CaloriesMean:   mean(calories),
		CaloriesStd:    stdDev(calories),
		Age:            profile.AgeOrDefault(),
		GenderEncoded:  profile.GenderEncoded(),
		DaysWithData:   countDays(records),
		TrendHeartRate: slope(heartRate),
		TrendSteps:     slope(steps),
		TrendSleep:     slope(sleep),
	}
}

// partition groups record values by known metric type, preserving order.
func partition(records []domain.MetricRecord) map[domain.MetricType][]float64 {
	series := make(map[domain.MetricType][]float64, len(domain.KnownMetricTypes))
	for _, r := range records {
		if !r.MetricType.IsKnown() {
			continue
		}
		series[r.MetricType] = append(series[r.MetricType], r.Value)
	}
	return series
}

// countDays returns the number of distinct UTC calendar dates across all records.
func countDays(records []domain.MetricRecord) int {
	days := make(map[string]struct{})
	for _, r := range records {
		days[r.Timestamp.UTC().Format(dateLayout)] = struct{}{}
	}
	return len(days)
}
