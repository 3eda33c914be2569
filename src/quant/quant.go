// Package quant holds the pure derivation functions over net-position
// series: rolling z-score, positioning velocity/acceleration and the two
// percentile notions (rolling empirical and cross-sectional heuristic).
// Nothing here performs I/O and nothing returns an error: insufficient-data
// conditions are signaled through sentinel results.
package quant

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DefaultZScoreWindow is 52 weekly reports, one year.
	DefaultZScoreWindow = 52
	// DefaultSmoothingWindow for velocity, in weeks.
	DefaultSmoothingWindow = 4
	// DefaultLookbackMonths for percentile ranking.
	DefaultLookbackMonths = 12

	// WeeksPerMonth converts a lookback in months to report weeks.
	WeeksPerMonth = 4
)

const (
	InterpInsufficient = "Insufficient data"
	InterpNoVariance   = "No variance in data"
)

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// tail returns the last n values, or all of them when the slice is shorter.
func tail(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation.
func stdDev(values []float64, mu float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var ss float64
	for _, v := range values {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
