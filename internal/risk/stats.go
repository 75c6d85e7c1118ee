package risk

import "math"

// All aggregates below return 0 for empty input and never return NaN or ±Inf.

// safeFloat maps NaN and ±Inf to 0.
func safeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := float64(len(values))
	total := 0.0
	for _, v := range values {
		total += v
	}
	if !math.IsInf(total, 0) {
		return safeFloat(total / n)
	}
	// The plain sum overflowed; divide first.
	avg := 0.0
	for _, v := range values {
		avg += v / n
	}
	return safeFloat(avg)
}

// stdDev is the population standard deviation (divides by n).
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return safeFloat(math.Sqrt(sumSquares / float64(len(values))))
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return safeFloat(total)
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return safeFloat(maxVal)
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	minVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return safeFloat(minVal)
}

// slope fits value = a + b*index by ordinary least squares and returns b.
// Fewer than two points or a zero denominator yield 0.
func slope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	fn := float64(n)
	denominator := fn*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return safeFloat((fn*sumXY - sumX*sumY) / denominator)
}

// clamp01 bounds v to [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// round rounds v to places decimals. Values too large to scale are already whole
// numbers and are returned as is.
func round(v float64, places int) float64 {
	v = safeFloat(v)
	scaled := v * math.Pow(10, float64(places))
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / math.Pow(10, float64(places))
}
