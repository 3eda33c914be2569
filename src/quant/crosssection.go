package quant

import (
	"sort"

	"cotmonitor/src/model"
)

// SymbolRank is one row of a cross-sectional positioning ranking.
type SymbolRank struct {
	Symbol     string  `json:"symbol"`
	Net        int64   `json:"net"`
	NetPct     float64 `json:"net_pct"`
	Percentile float64 `json:"percentile"`
	RankLabel  string  `json:"rank_label"`
}

// CrossSectionRank ranks all symbols against each other at the current
// moment by their net/open-interest ratio. This is a scaling heuristic
// (percentile = 50 + netPct * 2 * lookbackFactor, clamped to [0,100]), NOT
// an empirical percentile; it must not be conflated with PercentileRank or
// RollingPercentileSeries. Snapshots without open interest rank neutral.
// Output is sorted descending by percentile, ties by symbol.
func CrossSectionRank(snapshots map[string]*model.Snapshot, roleLabel string, lookbackMonths int) []SymbolRank {
	if lookbackMonths <= 0 {
		lookbackMonths = DefaultLookbackMonths
	}
	// Longer lookbacks widen the historical range a given ratio sits in,
	// so the scale dampens as the lookback grows.
	lookbackFactor := float64(DefaultLookbackMonths) / float64(lookbackMonths)

	out := make([]SymbolRank, 0, len(snapshots))
	for symbol, snap := range snapshots {
		if snap == nil || snap.IsEmpty() {
			continue
		}
		role := snap.Role(roleLabel)
		if role == nil {
			continue
		}

		var netPct float64
		if snap.OpenInterest != 0 {
			netPct = float64(role.Net) / float64(snap.OpenInterest) * 100
		}

		percentile := 50 + netPct*2*lookbackFactor
		if percentile < 0 {
			percentile = 0
		}
		if percentile > 100 {
			percentile = 100
		}
		percentile = round(percentile, 1)

		out = append(out, SymbolRank{
			Symbol:     symbol,
			Net:        role.Net,
			NetPct:     round(netPct, 2),
			Percentile: percentile,
			RankLabel:  RankLabel(percentile),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentile != out[j].Percentile {
			return out[i].Percentile > out[j].Percentile
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
