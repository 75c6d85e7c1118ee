package risk

import "github.com/blaisecz/health-risk/internal/domain"

type comparison int

const (
	above comparison = iota
	below
)

// band is one row of a scoring rule: when the value is strictly above or below threshold,
// the rule contributes weight.
type band struct {
	cmp       comparison
	threshold float64
	weight    float64
}

func (b band) matches(v float64) bool {
	if b.cmp == above {
		return v > b.threshold
	}
	return v < b.threshold
}

// rule scores one feature. Bands are ordered most severe first and the first match wins.
type rule struct {
	name  string
	value func(f domain.FeatureVector) float64
	bands []band
}

// Contribution is a rule that fired for a feature vector.
type Contribution struct {
	Rule   string  `json:"rule"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

var scoringRules = []rule{
	{
		name:  "heart_rate_mean",
		value: func(f domain.FeatureVector) float64 { return f.HeartRateMean },
		bands: []band{
			{above, 100, 0.30},
			{above, 90, 0.25},
			{above, 80, 0.15},
			{below, 50, 0.20},
			{below, 60, 0.10},
		},
	},
	{
		name:  "steps_mean",
		value: func(f domain.FeatureVector) float64 { return f.StepsMean },
		bands: []band{
			{below, 3000, 0.30},
			{below, 5000, 0.20},
			{below, 7000, 0.10},
		},
	},
	{
		name:  "sleep_hours_mean",
		value: func(f domain.FeatureVector) float64 { return f.SleepHoursMean },
		bands: []band{
			{below, 5, 0.20},
			{below, 6, 0.15},
			{below, 7, 0.10},
			{above, 10, 0.10},
		},
	},
	{
		name:  "calories_mean",
		value: func(f domain.FeatureVector) float64 { return f.CaloriesMean },
		bands: []band{
			{above, 3000, 0.10},
			{above, 2800, 0.05},
			{below, 1500, 0.08},
		},
	},
	{
		name:  "age",
		value: func(f domain.FeatureVector) float64 { return float64(f.Age) },
		bands: []band{
			{above, 60, 0.10},
			{above, 50, 0.05},
			{below, 18, 0.03},
		},
	},
	{
		name:  "trend_heart_rate",
		value: func(f domain.FeatureVector) float64 { return f.TrendHeartRate },
		bands: []band{{above, 0.5, 0.05}},
	},
	{
		name:  "trend_steps",
		value: func(f domain.FeatureVector) float64 { return f.TrendSteps },
		bands: []band{{below, -50, 0.05}},
	},
	{
		name:  "trend_sleep",
		value: func(f domain.FeatureVector) float64 { return f.TrendSleep },
		bands: []band{{below, -0.1, 0.05}},
	},
}

// evaluate returns the weight of the first matching band, or 0.
func (r rule) evaluate(f domain.FeatureVector) (float64, bool) {
	v := r.value(f)
	for _, b := range r.bands {
		if b.matches(v) {
			return b.weight, true
		}
	}
	return 0, false
}

// Contributions lists the rules that fire for f, in rule-table order.
func Contributions(f domain.FeatureVector) []Contribution {
	var hits []Contribution
	for _, r := range scoringRules {
		if weight, ok := r.evaluate(f); ok {
			hits = append(hits, Contribution{Rule: r.name, Value: r.value(f), Weight: weight})
		}
	}
	return hits
}

// Score sums the rule contributions for f and clamps the total to [0,1].
// Weight above the ceiling is dropped.
func Score(f domain.FeatureVector) float64 {
	total := 0.0
	for _, c := range Contributions(f) {
		total += c.Weight
	}
	return clamp01(total)
}

// Level bands a score: below 0.3 is low, below 0.6 is medium, everything else is high.
func Level(score float64) domain.RiskLevel {
	switch {
	case score < 0.3:
		return domain.RiskLevelLow
	case score < 0.6:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}
