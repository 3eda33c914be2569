package fetcher

import (
	"context"
	"errors"
	"testing"

	"cotmonitor/src/model"
	"cotmonitor/src/registry"
	"cotmonitor/src/socrata"
)

// fakeClient serves canned rows keyed by the $where filter expression.
type fakeClient struct {
	latest      map[string][]socrata.Record
	history     map[string][]socrata.Record
	err         error
	queryCalls  int
	historyCall int
}

func (f *fakeClient) Query(_ context.Context, _, where, _ string, _, _ int) ([]socrata.Record, error) {
	f.queryCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.latest[where], nil
}

func (f *fakeClient) QueryAll(_ context.Context, _, where, _ string) ([]socrata.Record, error) {
	f.historyCall++
	if f.err != nil {
		return nil, f.err
	}
	return f.history[where], nil
}

// fakeStore is an in-memory cache store.
type fakeStore struct {
	entries map[string]*model.Snapshot
	puts    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]*model.Snapshot{}}
}

func (s *fakeStore) Get(_ context.Context, symbol string) (*model.Snapshot, bool) {
	snap, ok := s.entries[symbol]
	return snap, ok
}

func (s *fakeStore) Put(_ context.Context, symbol string, snap *model.Snapshot) error {
	s.puts++
	s.entries[symbol] = snap
	return nil
}

func nameFilter(contract string) string {
	return socrata.EqualsFilter(registry.FieldContractName, contract)
}

func goldRow(date string) socrata.Record {
	return socrata.Record{
		"report_date_as_yyyy_mm_dd":   date,
		"open_interest_all":           "500000",
		"change_in_open_interest_all": "1200",
		"noncomm_positions_long_all":  "300000",
		"noncomm_positions_short_all": "100000",
		"change_in_noncomm_long_all":  "6000",
		"change_in_noncomm_short_all": "1000",
		"comm_positions_long_all":     "100000",
		"comm_positions_short_all":    "250000",
		"change_in_comm_long_all":     "-2000",
		"change_in_comm_short_all":    "1000",
		"nonrept_positions_long_all":  "20000",
		"nonrept_positions_short_all": "26000",
		"change_in_nonrept_long_all":  "100",
		"change_in_nonrept_short_all": "0",
		"market_and_exchange_names":   "GOLD - COMMODITY EXCHANGE INC.",
	}
}

func TestFetchLatestNormalizesSnapshot(t *testing.T) {
	client := &fakeClient{latest: map[string][]socrata.Record{
		nameFilter("GOLD - COMMODITY EXCHANGE INC."): {goldRow("2024-01-02")},
	}}
	store := newFakeStore()
	engine := NewEngine(client, store)

	snap := engine.FetchLatest(context.Background(), "GC")
	if snap.IsEmpty() {
		t.Fatal("expected a populated snapshot")
	}
	if snap.ReportDate != "January 2, 2024" {
		t.Errorf("report date = %q", snap.ReportDate)
	}
	if snap.OpenInterest != 500000 || snap.OIChange != 1200 {
		t.Errorf("open interest = %d (%+d)", snap.OpenInterest, snap.OIChange)
	}

	nc := snap.Role("non_commercial")
	if nc == nil {
		t.Fatal("missing non_commercial role")
	}
	if nc.Net != nc.Long-nc.Short || nc.Net != 200000 {
		t.Errorf("non_commercial net = %d, long %d short %d", nc.Net, nc.Long, nc.Short)
	}
	if nc.Change != 5000 {
		t.Errorf("non_commercial change = %d, want 5000", nc.Change)
	}

	// total positions = 796000; non-commercial share 400000/796000.
	if nc.Pct != 50.3 {
		t.Errorf("non_commercial pct = %v, want 50.3", nc.Pct)
	}

	for _, role := range snap.Roles {
		if role.Net != role.Long-role.Short {
			t.Errorf("role %s violates net = long - short", role.Label)
		}
	}

	if store.puts != 1 {
		t.Errorf("expected one cache write, got %d", store.puts)
	}
}

func TestFetchLatestServedFromCache(t *testing.T) {
	client := &fakeClient{}
	store := newFakeStore()
	cached := &model.Snapshot{ReportDate: "January 2, 2024"}
	store.entries["GC"] = cached

	engine := NewEngine(client, store)
	snap := engine.FetchLatest(context.Background(), "GC")

	if snap != cached {
		t.Fatal("expected the cached snapshot")
	}
	if client.queryCalls != 0 {
		t.Fatalf("expected no network calls on cache hit, got %d", client.queryCalls)
	}
}

func TestFetchLatestPicksMaxDateAcrossRenames(t *testing.T) {
	// Two historical names, each reporting its own most recent row; the
	// active contract is the one with the later date.
	client := &fakeClient{latest: map[string][]socrata.Record{
		nameFilter("JAPANESE YEN - CHICAGO MERCANTILE EXCHANGE"): {{
			"report_date_as_yyyy_mm_dd":   "2022-01-25",
			"noncomm_positions_long_all":  "10",
			"noncomm_positions_short_all": "5",
		}},
		nameFilter("JPN YEN - CHICAGO MERCANTILE EXCHANGE"): {{
			"report_date_as_yyyy_mm_dd":   "2024-03-05",
			"noncomm_positions_long_all":  "70000",
			"noncomm_positions_short_all": "120000",
		}},
	}}
	engine := NewEngine(client, newFakeStore())

	snap := engine.FetchLatest(context.Background(), "6J")
	if snap.ReportDate != "March 5, 2024" {
		t.Fatalf("expected the JPN YEN row to win, got %q", snap.ReportDate)
	}
	if net := snap.Role("non_commercial").Net; net != -50000 {
		t.Fatalf("non_commercial net = %d, want -50000", net)
	}
}

func TestFetchLatestUnknownSymbol(t *testing.T) {
	client := &fakeClient{}
	engine := NewEngine(client, newFakeStore())

	snap := engine.FetchLatest(context.Background(), "NOPE")
	if !snap.IsEmpty() {
		t.Fatal("expected the empty snapshot")
	}
	if snap.ReportDate != model.NoDataDate {
		t.Fatalf("report date = %q", snap.ReportDate)
	}
	if len(snap.Roles) != 3 {
		t.Fatalf("expected 3 zeroed legacy roles, got %d", len(snap.Roles))
	}
	if client.queryCalls != 0 {
		t.Fatal("unknown symbol must not hit the network")
	}
}

func TestFetchLatestDegradesOnRemoteFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("upstream down")}
	store := newFakeStore()
	engine := NewEngine(client, store)

	snap := engine.FetchLatest(context.Background(), "GC")
	if !snap.IsEmpty() {
		t.Fatal("expected the empty snapshot on remote failure")
	}
	if store.puts != 0 {
		t.Fatal("failed fetch must not be cached")
	}
}

func TestFetchLatestNoRowsUpstream(t *testing.T) {
	client := &fakeClient{latest: map[string][]socrata.Record{}}
	engine := NewEngine(client, newFakeStore())

	if snap := engine.FetchLatest(context.Background(), "GC"); !snap.IsEmpty() {
		t.Fatal("expected the empty snapshot when upstream has no rows")
	}
}

func historyRow(date, long, short string) socrata.Record {
	return socrata.Record{
		"report_date_as_yyyy_mm_dd":   date,
		"noncomm_positions_long_all":  long,
		"noncomm_positions_short_all": short,
		"comm_positions_long_all":     "1",
		"comm_positions_short_all":    "2",
	}
}

func TestFetchHistorySingleContract(t *testing.T) {
	client := &fakeClient{history: map[string][]socrata.Record{
		nameFilter("GOLD - COMMODITY EXCHANGE INC."): {
			historyRow("2024-01-02", "100", "40"),
			historyRow("2024-01-09", "110", "50"),
			historyRow("2024-01-16", "90", "95"),
		},
	}}
	engine := NewEngine(client, newFakeStore())

	points := engine.FetchHistory(context.Background(), "GC", registry.ReportLegacy)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	wantNets := []int64{60, 60, -5}
	for i, p := range points {
		if p.Week != i {
			t.Errorf("point %d week = %d", i, p.Week)
		}
		if p.Nets["non_commercial"] != wantNets[i] {
			t.Errorf("point %d non_commercial = %d, want %d", i, p.Nets["non_commercial"], wantNets[i])
		}
		if p.Nets["commercial"] != -1 {
			t.Errorf("point %d commercial = %d, want -1", i, p.Nets["commercial"])
		}
		if i > 0 && points[i-1].Date >= p.Date {
			t.Errorf("dates not strictly ascending at %d: %s >= %s", i, points[i-1].Date, p.Date)
		}
	}

	// Legacy series carries exactly three role keys.
	if len(points[0].Nets) != 3 {
		t.Fatalf("expected 3 role keys, got %d", len(points[0].Nets))
	}
}

func TestFetchHistoryDeduplicatesRenameOverlap(t *testing.T) {
	// Both names report 2022-02-01; the record collected last (second
	// name in registry order) must win.
	client := &fakeClient{history: map[string][]socrata.Record{
		nameFilter("JAPANESE YEN - CHICAGO MERCANTILE EXCHANGE"): {
			historyRow("2022-01-25", "10", "0"),
			historyRow("2022-02-01", "20", "0"),
		},
		nameFilter("JPN YEN - CHICAGO MERCANTILE EXCHANGE"): {
			historyRow("2022-02-01", "30", "0"),
			historyRow("2022-02-08", "40", "0"),
		},
	}}
	engine := NewEngine(client, newFakeStore())

	points := engine.FetchHistory(context.Background(), "6J", registry.ReportLegacy)
	if len(points) != 3 {
		t.Fatalf("expected 3 deduplicated points, got %d", len(points))
	}

	seen := map[string]bool{}
	for _, p := range points {
		if seen[p.Date] {
			t.Fatalf("duplicate date %s in output", p.Date)
		}
		seen[p.Date] = true
	}

	if points[1].Date != "2022-02-01" || points[1].Nets["non_commercial"] != 30 {
		t.Fatalf("overlap point = %+v, want last-seen net 30", points[1])
	}
}

func TestFetchHistoryFourRoleReports(t *testing.T) {
	client := &fakeClient{history: map[string][]socrata.Record{
		nameFilter("GOLD - COMMODITY EXCHANGE INC."): {{
			"report_date_as_yyyy_mm_dd":   "2024-01-02",
			"prod_merc_positions_long":    "100",
			"prod_merc_positions_short":   "30",
			"swap_positions_long_all":     "50",
			"swap__positions_short_all":   "80",
			"m_money_positions_long_all":  "200",
			"m_money_positions_short_all": "20",
			"other_rept_positions_long":   "5",
			"other_rept_positions_short":  "10",
		}},
	}}
	engine := NewEngine(client, newFakeStore())

	points := engine.FetchHistory(context.Background(), "GC", registry.ReportDisaggregated)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	nets := points[0].Nets
	if len(nets) != 4 {
		t.Fatalf("expected 4 role keys, got %d", len(nets))
	}
	if nets["producer_merchant"] != 70 || nets["swap_dealer"] != -30 ||
		nets["managed_money"] != 180 || nets["other_reportable"] != -5 {
		t.Fatalf("unexpected nets: %v", nets)
	}
}

func TestFetchHistoryUnsupportedPair(t *testing.T) {
	client := &fakeClient{}
	engine := NewEngine(client, newFakeStore())

	// Equities are not covered by the disaggregated report.
	points := engine.FetchHistory(context.Background(), "ES", registry.ReportDisaggregated)
	if len(points) != 0 {
		t.Fatalf("expected empty series, got %d points", len(points))
	}
	if client.historyCall != 0 {
		t.Fatal("unsupported pair must not hit the network")
	}
}

func TestFetchHistoryDegradesOnRemoteFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("timeout")}
	engine := NewEngine(client, newFakeStore())

	points := engine.FetchHistory(context.Background(), "GC", registry.ReportLegacy)
	if points == nil || len(points) != 0 {
		t.Fatalf("expected empty non-nil series, got %v", points)
	}
}

func TestFetchHistoryMalformedFieldsCoerceToZero(t *testing.T) {
	client := &fakeClient{history: map[string][]socrata.Record{
		nameFilter("GOLD - COMMODITY EXCHANGE INC."): {{
			"report_date_as_yyyy_mm_dd":  "2024-01-02",
			"noncomm_positions_long_all": "garbage",
			// short field absent entirely
		}},
	}}
	engine := NewEngine(client, newFakeStore())

	points := engine.FetchHistory(context.Background(), "GC", registry.ReportLegacy)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].Nets["non_commercial"] != 0 {
		t.Fatalf("malformed fields must coerce to zero, got %d", points[0].Nets["non_commercial"])
	}
}
