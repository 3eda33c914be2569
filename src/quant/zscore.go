package quant

import "math"

// ZScoreResult describes how far the current position sits from its recent
// mean, in standard deviations.
type ZScoreResult struct {
	ZScore         float64 `json:"z_score"`
	Interpretation string  `json:"interpretation"`
	Percentile     float64 `json:"percentile"`
	IsExtreme      bool    `json:"is_extreme"`
	Mean           float64 `json:"mean"`
	Std            float64 `json:"std"`
}

// RollingZScore computes (current - mean) / std over the last window values
// of history. window <= 0 selects DefaultZScoreWindow. Fewer than 2 samples
// or zero variance yield sentinel results instead of a division error.
//
// The percentile here is the normal-CDF approximation of the z-score, not
// an empirical rank; see PercentileRank for the empirical notion.
func RollingZScore(current float64, history []float64, window int) ZScoreResult {
	if window <= 0 {
		window = DefaultZScoreWindow
	}

	if len(history) < 2 {
		return ZScoreResult{
			Interpretation: InterpInsufficient,
			Percentile:     50.0,
		}
	}

	recent := tail(history, window)
	mu := mean(recent)
	sigma := stdDev(recent, mu)

	if sigma == 0 {
		return ZScoreResult{
			Interpretation: InterpNoVariance,
			Percentile:     50.0,
			Mean:           round(mu, 0),
		}
	}

	z := round((current-mu)/sigma, 2)

	var interp string
	switch {
	case z > 2:
		interp = "Extremely Bullish"
	case z > 1:
		interp = "Bullish"
	case z > -1:
		interp = "Neutral"
	case z > -2:
		interp = "Bearish"
	default:
		interp = "Extremely Bearish"
	}

	return ZScoreResult{
		ZScore:         z,
		Interpretation: interp,
		Percentile:     round(normalCDF(z)*100, 1),
		IsExtreme:      math.Abs(z) >= 2,
		Mean:           round(mu, 0),
		Std:            round(sigma, 0),
	}
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}
