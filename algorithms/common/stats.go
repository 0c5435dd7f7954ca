package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Robust statistical helpers shared across the analysis packages, backed by
// gonum where it has an implementation.

// MADScale converts a median absolute deviation into a consistent estimate
// of the standard deviation for normally distributed data.
const MADScale = 1.4826

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the sample variance (n-1 denominator) using gonum
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// StandardDeviation calculates the sample standard deviation
func StandardDeviation(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return math.Sqrt(Variance(data))
}

// Median returns the middle value of the data (mean of the two middle
// values for even lengths). The input is not modified.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2.0
	}
	return sorted[mid]
}

// MAD returns the median absolute deviation from the median, scaled by
// MADScale so the result is comparable to a standard deviation.
func MAD(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	med := Median(data)
	deviations := make([]float64, len(data))
	for i, v := range data {
		deviations[i] = math.Abs(v - med)
	}

	return MADScale * Median(deviations)
}

// CoefficientOfVariation returns stddev/mean, or 0 when the mean is 0.
func CoefficientOfVariation(data []float64) float64 {
	mean := Mean(data)
	if mean == 0 {
		return 0.0
	}
	return StandardDeviation(data) / mean
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PrevPowerOfTwo finds the largest power of 2 <= n, or 0 when n < 1
func PrevPowerOfTwo(n int) int {
	if n < 1 {
		return 0
	}

	power := 1
	for power*2 <= n {
		power <<= 1
	}
	return power
}
