// Package calc provides deterministic financial calculations over completed
// scenario projections: ratios, growth math, and the shared guarded-division
// helpers every analyzer leans on.
package calc

import "math"

// SafeDiv returns a/b, or 0 when the denominator is 0.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// GrowthRate returns the percentage change from prior to current.
// Zero prior with non-zero current reports 0 rather than infinity.
func GrowthRate(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior * 100
}

// CAGR computes compound annual growth rate as a percentage.
// CAGR = ((end / start) ^ (1/years)) - 1
func CAGR(start, end float64, years int) float64 {
	if start <= 0 || end <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1.0/float64(years)) - 1) * 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
