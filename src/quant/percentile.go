package quant

// PercentileResult ranks the current value against a trailing window of
// history, empirically.
type PercentileResult struct {
	Percentile       float64 `json:"percentile"`
	RankLabel        string  `json:"rank_label"`
	HistoricalMin    float64 `json:"historical_min"`
	HistoricalMax    float64 `json:"historical_max"`
	HistoricalMedian float64 `json:"historical_median"`
}

// PercentilePoint is one row of a rolling percentile series.
type PercentilePoint struct {
	Date       string  `json:"date"`
	Percentile float64 `json:"percentile"`
	Value      float64 `json:"value"`
}

// SeriesSample is a dated value, the input shape for rolling computations.
type SeriesSample struct {
	Date  string
	Value float64
}

// minPriorSamples is the smallest prior-window population for which a
// rolling percentile is meaningful; below it the rank defaults to neutral.
const minPriorSamples = 4

// RankLabel buckets an empirical percentile for display.
func RankLabel(percentile float64) string {
	switch {
	case percentile >= 90:
		return "Extremely High"
	case percentile >= 75:
		return "High"
	case percentile >= 50:
		return "Above Average"
	case percentile >= 25:
		return "Below Average"
	case percentile >= 10:
		return "Low"
	default:
		return "Extremely Low"
	}
}

// PercentileRank computes the empirical percentile of current against the
// trailing lookbackMonths of history (4 report weeks per month).
// lookbackMonths <= 0 selects DefaultLookbackMonths.
func PercentileRank(current float64, history []float64, lookbackMonths int) PercentileResult {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}

	if len(history) == 0 {
		return PercentileResult{
			Percentile: 50.0,
			RankLabel:  "Neutral",
		}
	}

	recent := tail(history, lookbackMonths*WeeksPerMonth)

	below := 0
	for _, v := range recent {
		if v < current {
			below++
		}
	}
	percentile := round(float64(below)/float64(len(recent))*100, 1)

	var min, max float64
	min, max = recent[0], recent[0]
	for _, v := range recent[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return PercentileResult{
		Percentile:       percentile,
		RankLabel:        RankLabel(percentile),
		HistoricalMin:    round(min, 0),
		HistoricalMax:    round(max, 0),
		HistoricalMedian: round(median(recent), 0),
	}
}

// RollingPercentileSeries computes the point-in-time percentile at every
// sample, ranking each value against only the strictly-prior values inside
// a trailing window of lookbackMonths*4 weeks. Points with fewer than
// minPriorSamples prior values rank as a neutral 50.0, so early history
// does not fabricate extremes.
func RollingPercentileSeries(samples []SeriesSample, lookbackMonths int) []PercentilePoint {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}
	window := lookbackMonths * WeeksPerMonth

	out := make([]PercentilePoint, 0, len(samples))
	for i, s := range samples {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		prior := samples[lo:i]

		percentile := 50.0
		if len(prior) >= minPriorSamples {
			below := 0
			for _, p := range prior {
				if p.Value < s.Value {
					below++
				}
			}
			percentile = round(float64(below)/float64(len(prior))*100, 1)
		}

		out = append(out, PercentilePoint{
			Date:       s.Date,
			Percentile: percentile,
			Value:      s.Value,
		})
	}
	return out
}
