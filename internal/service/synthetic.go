package service

import (
	"hash/fnv"
	"math/rand"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/google/uuid"
)

// syntheticDays is the number of days a synthetic profile claims to cover.
const syntheticDays = 30

// syntheticFeatures draws a plausible feature vector for a patient with too little data.
// The generator is seeded from the patient id, so the same patient always gets the same
// vector. Demographics stored on the patient override the drawn ones.
func syntheticFeatures(patient *domain.Patient) domain.FeatureVector {
	rng := rand.New(rand.NewSource(seedFor(patient.ID)))
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	heartRate := uniform(65, 85)
	steps := uniform(4000, 9000)
	sleep := uniform(5.5, 8)
	calories := uniform(1900, 2600)

	f := domain.FeatureVector{
		HeartRateMean:  heartRate,
		HeartRateStd:   uniform(5, 15),
		HeartRateMax:   heartRate + uniform(15, 30),
		HeartRateMin:   heartRate - uniform(10, 20),
		StepsMean:      steps,
		StepsStd:       uniform(1000, 2500),
		StepsTotal:     steps * syntheticDays,
		SleepHoursMean: sleep,
		SleepHoursStd:  uniform(0.5, 1.5),
		CaloriesMean:   calories,
		CaloriesStd:    uniform(200, 400),
		Age:            25 + rng.Intn(31),
		GenderEncoded:  rng.Intn(2),
		DaysWithData:   syntheticDays,
		TrendHeartRate: uniform(-0.5, 0.5),
		TrendSteps:     uniform(-100, 100),
		TrendSleep:     uniform(-0.2, 0.2),
	}

	profile := patient.Profile()
	if profile.Age != nil {
		f.Age = *profile.Age
	}
	if profile.Gender != nil {
		f.GenderEncoded = profile.GenderEncoded()
	}
	return f
}

func seedFor(id uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write(id[:])
	return int64(h.Sum64())
}
