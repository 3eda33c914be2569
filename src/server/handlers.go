package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cotmonitor/src/model"
	"cotmonitor/src/quant"
	"cotmonitor/src/registry"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
)

type reportFetcher interface {
	FetchLatest(ctx context.Context, symbol string) *model.Snapshot
	FetchHistory(ctx context.Context, symbol string, rt registry.ReportType) []model.SeriesPoint
}

// IndicatorsResponse bundles the derived indicators for one symbol's net
// positioning series.
type IndicatorsResponse struct {
	Symbol           string                  `json:"symbol"`
	ReportType       string                  `json:"report_type"`
	Role             string                  `json:"role"`
	ZScore           quant.ZScoreResult      `json:"z_score"`
	Velocity         quant.VelocityResult    `json:"velocity"`
	Percentile       quant.PercentileResult  `json:"percentile"`
	PercentileSeries []quant.PercentilePoint `json:"percentile_series"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func reportParam(r *http.Request) (registry.ReportType, error) {
	report := r.URL.Query().Get("report")
	if report == "" {
		return registry.ReportLegacy, nil
	}
	return registry.ParseReportType(report)
}

// LatestHandler returns the current positioning snapshot for a symbol. A
// symbol with no data serializes as an empty snapshot, not an error.
func LatestHandler(engine reportFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
		writeJSON(w, engine.FetchLatest(r.Context(), symbol))
	}
}

// HistoryHandler returns the weekly net positioning series for a symbol.
func HistoryHandler(engine reportFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

		rt, err := reportParam(r)
		if err != nil {
			http.Error(w, "invalid report", http.StatusBadRequest)
			return
		}

		points := engine.FetchHistory(r.Context(), symbol, rt)
		if points == nil {
			points = []model.SeriesPoint{}
		}
		writeJSON(w, points)
	}
}

// IndicatorsHandler computes z-score, velocity and percentile indicators
// over one role's net series for a symbol.
func IndicatorsHandler(engine reportFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

		rt, err := reportParam(r)
		if err != nil {
			http.Error(w, "invalid report", http.StatusBadRequest)
			return
		}

		window := quant.DefaultZScoreWindow
		if windowParam := r.URL.Query().Get("window"); windowParam != "" {
			parsed, err := strconv.Atoi(windowParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid window", http.StatusBadRequest)
				return
			}
			window = parsed
		}

		smoothing := quant.DefaultSmoothingWindow
		if smoothingParam := r.URL.Query().Get("smoothing"); smoothingParam != "" {
			parsed, err := strconv.Atoi(smoothingParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid smoothing", http.StatusBadRequest)
				return
			}
			smoothing = parsed
		}

		lookback := quant.DefaultLookbackMonths
		if lookbackParam := r.URL.Query().Get("lookback"); lookbackParam != "" {
			parsed, err := strconv.Atoi(lookbackParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid lookback", http.StatusBadRequest)
				return
			}
			lookback = parsed
		}

		role := registry.RoleLabel(rt, 0)
		if roleParam := r.URL.Query().Get("role"); roleParam != "" {
			if !validRole(rt, roleParam) {
				http.Error(w, "invalid role", http.StatusBadRequest)
				return
			}
			role = roleParam
		}

		points := engine.FetchHistory(r.Context(), symbol, rt)
		nets := model.NetSeries(points, role)

		current := 0.0
		if len(nets) > 0 {
			current = nets[len(nets)-1]
		}

		samples := make([]quant.SeriesSample, 0, len(points))
		for i, p := range points {
			samples = append(samples, quant.SeriesSample{Date: p.Date, Value: nets[i]})
		}

		resp := IndicatorsResponse{
			Symbol:           symbol,
			ReportType:       string(rt),
			Role:             role,
			ZScore:           quant.RollingZScore(current, nets, window),
			Velocity:         quant.Velocity(nets, smoothing),
			Percentile:       quant.PercentileRank(current, nets, lookback),
			PercentileSeries: quant.RollingPercentileSeries(samples, lookback),
		}
		writeJSON(w, resp)
	}
}

// RankingsHandler ranks every supported symbol cross-sectionally by one
// role's net/open-interest ratio, using the latest snapshots.
func RankingsHandler(engine reportFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := registry.RoleLabel(registry.ReportLegacy, 0)
		if roleParam := r.URL.Query().Get("role"); roleParam != "" {
			if !validRole(registry.ReportLegacy, roleParam) {
				http.Error(w, "invalid role", http.StatusBadRequest)
				return
			}
			role = roleParam
		}

		lookback := quant.DefaultLookbackMonths
		if lookbackParam := r.URL.Query().Get("lookback"); lookbackParam != "" {
			parsed, err := strconv.Atoi(lookbackParam)
			if err != nil || parsed <= 0 {
				http.Error(w, "invalid lookback", http.StatusBadRequest)
				return
			}
			lookback = parsed
		}

		snapshots := make(map[string]*model.Snapshot)
		for _, symbol := range registry.Symbols(registry.ReportLegacy) {
			snapshots[symbol] = engine.FetchLatest(r.Context(), symbol)
		}

		writeJSON(w, quant.CrossSectionRank(snapshots, role, lookback))
	}
}

// SymbolsHandler lists the supported symbols per report type.
func SymbolsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make(map[string][]string, 3)
		for _, rt := range registry.ReportTypes() {
			out[string(rt)] = registry.Symbols(rt)
		}
		writeJSON(w, out)
	}
}

func validRole(rt registry.ReportType, label string) bool {
	for _, l := range registry.RoleLabels(rt) {
		if l == label {
			return true
		}
	}
	return false
}
