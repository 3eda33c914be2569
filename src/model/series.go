package model

import "encoding/json"

// SeriesPoint is one row of a normalized historical series: the report date,
// a sequential week index, and the net position for each trader category
// keyed by role label.
type SeriesPoint struct {
	Date string
	Week int
	Nets map[string]int64
}

// MarshalJSON flattens the net positions into the top-level object, so a
// point serializes as {"date": ..., "week": ..., "non_commercial": ...}.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Nets)+2)
	out["date"] = p.Date
	out["week"] = p.Week
	for label, net := range p.Nets {
		out[label] = net
	}
	return json.Marshal(out)
}

// NetSeries extracts the net-position values for one role label, in series
// order. Points missing the label contribute 0.
func NetSeries(points []SeriesPoint, label string) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, float64(p.Nets[label]))
	}
	return out
}
