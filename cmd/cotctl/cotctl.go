package cotctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cotmonitor/src/cache"
	"cotmonitor/src/fetcher"
	"cotmonitor/src/model"
	"cotmonitor/src/quant"
	"cotmonitor/src/registry"
	"cotmonitor/src/socrata"

	logger "github.com/sirupsen/logrus"
)

// Cotctl runs one-shot report commands, printing JSON to stdout.
type Cotctl struct {
	Log    *logger.Entry
	Engine *fetcher.Engine
}

type indicatorsOutput struct {
	Symbol           string                  `json:"symbol"`
	ReportType       string                  `json:"report_type"`
	Role             string                  `json:"role"`
	ZScore           quant.ZScoreResult      `json:"z_score"`
	Velocity         quant.VelocityResult    `json:"velocity"`
	Percentile       quant.PercentileResult  `json:"percentile"`
	PercentileSeries []quant.PercentilePoint `json:"percentile_series"`
}

func (c *Cotctl) init() error {
	if c.Engine != nil {
		return nil
	}
	store, err := cache.New(cache.GetConfig())
	if err != nil {
		return fmt.Errorf("initializing snapshot cache: %w", err)
	}
	c.Engine = fetcher.NewEngine(socrata.NewClient(socrata.GetConfig()), store)
	return nil
}

// Latest prints the current positioning snapshot for a symbol.
func (c *Cotctl) Latest(symbol string) error {
	if err := c.init(); err != nil {
		return err
	}
	c.Log.WithField("symbol", symbol).Info("fetching latest snapshot")
	return printJSON(c.Engine.FetchLatest(context.Background(), symbol))
}

// History prints the weekly net positioning series for a symbol.
func (c *Cotctl) History(symbol, report string) error {
	rt, err := registry.ParseReportType(report)
	if err != nil {
		return err
	}
	if err := c.init(); err != nil {
		return err
	}

	c.Log.WithFields(logger.Fields{"symbol": symbol, "reportType": rt}).Info("fetching history")
	points := c.Engine.FetchHistory(context.Background(), symbol, rt)
	if points == nil {
		points = []model.SeriesPoint{}
	}
	return printJSON(points)
}

// Indicators prints the derived indicators over one role's net series.
func (c *Cotctl) Indicators(symbol, report, role string, window, smoothing, lookback int) error {
	rt, err := registry.ParseReportType(report)
	if err != nil {
		return err
	}
	if role == "" {
		role = registry.RoleLabel(rt, 0)
	} else if !validRole(rt, role) {
		return fmt.Errorf("unknown role %q for %s report", role, rt)
	}
	if err := c.init(); err != nil {
		return err
	}

	c.Log.WithFields(logger.Fields{"symbol": symbol, "reportType": rt, "role": role}).Info("computing indicators")
	points := c.Engine.FetchHistory(context.Background(), symbol, rt)
	nets := model.NetSeries(points, role)

	current := 0.0
	if len(nets) > 0 {
		current = nets[len(nets)-1]
	}

	samples := make([]quant.SeriesSample, 0, len(points))
	for i, p := range points {
		samples = append(samples, quant.SeriesSample{Date: p.Date, Value: nets[i]})
	}

	return printJSON(indicatorsOutput{
		Symbol:           symbol,
		ReportType:       string(rt),
		Role:             role,
		ZScore:           quant.RollingZScore(current, nets, window),
		Velocity:         quant.Velocity(nets, smoothing),
		Percentile:       quant.PercentileRank(current, nets, lookback),
		PercentileSeries: quant.RollingPercentileSeries(samples, lookback),
	})
}

func validRole(rt registry.ReportType, label string) bool {
	for _, l := range registry.RoleLabels(rt) {
		if l == label {
			return true
		}
	}
	return false
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
