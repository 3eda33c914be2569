// Package fetcher orchestrates the contract registry, report schemas and
// the Socrata client into normalized snapshots and series. Its two public
// operations are contractually non-failing: remote and parse failures are
// logged and degrade to empty results, so one broken market never takes
// down the rest of the dashboard.
package fetcher

import (
	"context"
	"sort"
	"time"

	logger "github.com/sirupsen/logrus"

	"cotmonitor/src/cache"
	"cotmonitor/src/model"
	"cotmonitor/src/registry"
	"cotmonitor/src/socrata"
)

// Querier is the slice of the Socrata client the engine needs; tests
// substitute a fake.
type Querier interface {
	Query(ctx context.Context, datasetID, where, order string, limit, offset int) ([]socrata.Record, error)
	QueryAll(ctx context.Context, datasetID, where, order string) ([]socrata.Record, error)
}

// Engine owns one remote client and one cache store. Construct it once at
// startup and inject it into consumers.
type Engine struct {
	client Querier
	store  cache.Store
	log    *logger.Entry
}

func NewEngine(client Querier, store cache.Store) *Engine {
	return &Engine{
		client: client,
		store:  store,
		log:    logger.WithField("component", "fetcher"),
	}
}

// FetchLatest returns the most recent Legacy-report snapshot for a symbol.
// Unknown symbols, empty upstream results and remote failures all yield the
// empty snapshot, never an error.
func (e *Engine) FetchLatest(ctx context.Context, symbol string) *model.Snapshot {
	if e.store != nil {
		if cached, ok := e.store.Get(ctx, symbol); ok {
			return cached
		}
	}

	names := registry.ResolveNames(symbol, registry.ReportLegacy)
	if len(names) == 0 {
		return e.emptySnapshot()
	}

	datasetID := registry.DatasetID(registry.ReportLegacy)

	// One limit=1 query per historical name. Only one name is active at
	// any time, so the max report date across names selects the active
	// contract; same-date rows are never aggregated.
	var rows []socrata.Record
	for _, name := range names {
		page, err := e.client.Query(ctx, datasetID,
			socrata.EqualsFilter(registry.FieldContractName, name),
			registry.FieldReportDate+" DESC", 1, 0)
		if err != nil {
			e.log.WithError(err).WithFields(logger.Fields{
				"symbol":     symbol,
				"reportType": registry.ReportLegacy,
				"contract":   name,
			}).Error("Latest report fetch failed")
			return e.emptySnapshot()
		}
		rows = append(rows, page...)
	}

	if len(rows) == 0 {
		return e.emptySnapshot()
	}

	latest := rows[0]
	for _, row := range rows[1:] {
		// ISO dates are fixed width, so string comparison orders them.
		if SafeString(row[registry.FieldReportDate]) > SafeString(latest[registry.FieldReportDate]) {
			latest = row
		}
	}

	snap := e.normalizeSnapshot(latest)

	if e.store != nil {
		if err := e.store.Put(ctx, symbol, snap); err != nil {
			e.log.WithError(err).WithField("symbol", symbol).Warn("Cache write failed")
		}
	}

	return snap
}

// FetchHistory returns the full normalized net-position series for a
// symbol under a report type, ascending by date and deduplicated. Same
// never-fail contract as FetchLatest: failures yield an empty series.
func (e *Engine) FetchHistory(ctx context.Context, symbol string, rt registry.ReportType) []model.SeriesPoint {
	names := registry.ResolveNames(symbol, rt)
	if len(names) == 0 {
		return []model.SeriesPoint{}
	}

	datasetID := registry.DatasetID(rt)
	schema := registry.RoleSchema(rt)

	// Collect everything before merging: name validity windows can
	// overlap or gap at rename boundaries, so sorting only after full
	// collection is the simplest correct way to a monotonic series.
	var records []socrata.Record
	for _, name := range names {
		rows, err := e.client.QueryAll(ctx, datasetID,
			socrata.EqualsFilter(registry.FieldContractName, name),
			registry.FieldReportDate+" ASC")
		if err != nil {
			e.log.WithError(err).WithFields(logger.Fields{
				"symbol":     symbol,
				"reportType": rt,
				"contract":   name,
			}).Error("History fetch failed")
			return []model.SeriesPoint{}
		}
		records = append(records, rows...)
	}

	if len(records) == 0 {
		return []model.SeriesPoint{}
	}

	// Dedup by date, last seen wins: duplicates arise where two names'
	// validity windows overlap at a rename boundary.
	byDate := make(map[string]map[string]int64, len(records))
	for _, rec := range records {
		date := SafeString(rec[registry.FieldReportDate])
		if date == "" {
			continue
		}
		if len(date) > 10 {
			date = date[:10] // some vintages append a time component
		}

		nets := make(map[string]int64, len(schema.Roles))
		for _, role := range schema.Roles {
			nets[role.Label] = SafeInt(rec[role.LongField]) - SafeInt(rec[role.ShortField])
		}
		byDate[date] = nets
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]model.SeriesPoint, 0, len(dates))
	for i, date := range dates {
		points = append(points, model.SeriesPoint{
			Date: date,
			Week: i,
			Nets: byDate[date],
		})
	}
	return points
}

// normalizeSnapshot maps one raw Legacy row into the dashboard shape.
func (e *Engine) normalizeSnapshot(rec socrata.Record) *model.Snapshot {
	schema := registry.RoleSchema(registry.ReportLegacy)

	roles := make([]model.RolePosition, 0, len(schema.Roles))
	var totalPositions int64
	for _, role := range schema.Roles {
		long := SafeInt(rec[role.LongField])
		short := SafeInt(rec[role.ShortField])
		roles = append(roles, model.RolePosition{
			Label:  role.Label,
			Long:   long,
			Short:  short,
			Net:    long - short,
			Change: SafeInt(rec[role.LongChange]) - SafeInt(rec[role.ShortChange]),
		})
		totalPositions += long + short
	}
	for i := range roles {
		roles[i].Pct = PctOfTotal(roles[i].Long+roles[i].Short, totalPositions)
	}

	return &model.Snapshot{
		ReportDate:   displayDate(SafeString(rec[registry.FieldReportDate])),
		OpenInterest: SafeInt(rec[registry.FieldOpenInterest]),
		OIChange:     SafeInt(rec[registry.FieldOIChange]),
		Roles:        roles,
	}
}

func (e *Engine) emptySnapshot() *model.Snapshot {
	return model.NewEmptySnapshot(registry.RoleLabels(registry.ReportLegacy))
}

// displayDate renders an ISO report date as "January 2, 2006", falling back
// to the raw string when it does not parse.
func displayDate(iso string) string {
	if len(iso) > 10 {
		iso = iso[:10]
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		if iso == "" {
			return model.NoDataDate
		}
		return iso
	}
	return d.Format("January 2, 2006")
}
