package risk

import (
	"math"
	"sort"

	"github.com/blaisecz/health-risk/internal/domain"
)

// Baselines used to normalise factor impact.
const (
	BaselineHeartRate = 70.0
	BaselineSteps     = 8000.0
	BaselineSleep     = 7.5
	BaselineCalories  = 2200.0
)

// Recommendation messages, emitted in this order.
const (
	RecommendStress   = "Consider stress management techniques to lower resting heart rate"
	RecommendActivity = "Increase daily physical activity - aim for at least 8000 steps per day"
	RecommendSleep    = "Improve sleep quality - aim for 7-8 hours per night"
	RecommendDiet     = "Monitor calorie intake and consider dietary adjustments"
	RecommendMaintain = "Keep up the great work! Maintain your healthy lifestyle"
)

// Factors explains the four metrics against their baselines, ordered by descending impact.
// Equal impacts keep the order heart_rate, steps, sleep, calories.
func Factors(f domain.FeatureVector) []domain.ContributingFactor {
	factors := []domain.ContributingFactor{
		{
			Feature: domain.MetricHeartRate,
			Impact:  impact(f.HeartRateMean, BaselineHeartRate),
			Status:  heartRateStatus(f.HeartRateMean),
		},
		{
			Feature: domain.MetricSteps,
			Impact:  impact(f.StepsMean, BaselineSteps),
			Status:  stepsStatus(f.StepsMean),
		},
		{
			Feature: domain.MetricSleep,
			Impact:  impact(f.SleepHoursMean, BaselineSleep),
			Status:  sleepStatus(f.SleepHoursMean),
		},
		{
			Feature: domain.MetricCalories,
			Impact:  impact(f.CaloriesMean, BaselineCalories),
			Status:  caloriesStatus(f.CaloriesMean),
		},
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Impact > factors[j].Impact
	})
	return factors
}

func impact(value, baseline float64) float64 {
	return round(math.Abs(value-baseline)/baseline, 2)
}

func heartRateStatus(v float64) domain.FactorStatus {
	if v > 80 || v < 60 {
		return domain.FactorStatusWarning
	}
	return domain.FactorStatusGood
}

func stepsStatus(v float64) domain.FactorStatus {
	switch {
	case v < 5000:
		return domain.FactorStatusCritical
	case v < 7000:
		return domain.FactorStatusWarning
	default:
		return domain.FactorStatusGood
	}
}

func sleepStatus(v float64) domain.FactorStatus {
	switch {
	case v < 6:
		return domain.FactorStatusCritical
	case v < 7:
		return domain.FactorStatusWarning
	default:
		return domain.FactorStatusGood
	}
}

func caloriesStatus(v float64) domain.FactorStatus {
	if v > 2800 {
		return domain.FactorStatusWarning
	}
	return domain.FactorStatusGood
}

// Recommendations returns lifestyle advice for f. It is never empty.
func Recommendations(f domain.FeatureVector) []string {
	var recs []string
	if f.HeartRateMean > 80 {
		recs = append(recs, RecommendStress)
	}
	if f.StepsMean < 7000 {
		recs = append(recs, RecommendActivity)
	}
	if f.SleepHoursMean < 7 {
		recs = append(recs, RecommendSleep)
	}
	if f.CaloriesMean > 2500 {
		recs = append(recs, RecommendDiet)
	}
	if len(recs) == 0 {
		recs = append(recs, RecommendMaintain)
	}
	return recs
}

// Summarize reports the metric means of f at display precision: heart rate and sleep to
// one decimal, steps and calories to whole numbers.
func Summarize(f domain.FeatureVector) domain.MetricsAnalyzed {
	return domain.MetricsAnalyzed{
		HeartRateAvg: round(f.HeartRateMean, 1),
		StepsAvg:     round(f.StepsMean, 0),
		SleepAvg:     round(f.SleepHoursMean, 1),
		CaloriesAvg:  round(f.CaloriesMean, 0),
	}
}
