package insights

import (
	"math"
	"sort"
)

const (
	// madScale rescales MAD to be comparable with a normal-distribution
	// standard deviation.
	madScale = 0.6745

	// outlierZThreshold is the robust z-score magnitude at which a price
	// sample is flagged.
	outlierZThreshold = 3.5
)

// linregSlope returns the ordinary-least-squares slope of ys against the
// implicit index 0..n-1. The series is treated as evenly spaced regardless of
// calendar gaps. Degenerate input (fewer than 2 points) yields 0.
func linregSlope(ys []float64) float64 {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// median returns the middle value of xs, averaging the two central values for
// even lengths. Returns 0 for empty input. The input is not mutated.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// medianAbsDeviation returns the MAD of xs around med.
func medianAbsDeviation(xs []float64, med float64) float64 {
	deviations := make([]float64, len(xs))
	for i, x := range xs {
		deviations[i] = math.Abs(x - med)
	}
	return median(deviations)
}

// robustZ computes the MAD-based z-score. A zero MAD substitutes 1 to avoid
// division by zero.
func robustZ(x, med, mad float64) float64 {
	if mad == 0 {
		mad = 1
	}
	return madScale * (x - med) / mad
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
