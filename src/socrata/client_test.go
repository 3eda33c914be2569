package socrata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(&Config{Host: srv.URL, BatchSize: 3, TimeoutS: 5})
	return c, srv
}

func rowsJSON(n, start int) []map[string]any {
	rows := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, map[string]any{
			"report_date_as_yyyy_mm_dd": fmt.Sprintf("2024-01-%02d", start+i+1),
		})
	}
	return rows
}

func TestQueryPassesSoQLParams(t *testing.T) {
	var gotQuery map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resource/6dca-aqww.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"$where":  r.URL.Query().Get("$where"),
			"$order":  r.URL.Query().Get("$order"),
			"$limit":  r.URL.Query().Get("$limit"),
			"$offset": r.URL.Query().Get("$offset"),
		}
		_ = json.NewEncoder(w).Encode(rowsJSON(1, 0))
	})

	where := EqualsFilter("market_and_exchange_names", "GOLD - COMMODITY EXCHANGE INC.")
	rows, err := c.Query(context.Background(), "6dca-aqww", where, "report_date_as_yyyy_mm_dd DESC", 1, 0)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if gotQuery["$where"] != "market_and_exchange_names = 'GOLD - COMMODITY EXCHANGE INC.'" {
		t.Errorf("unexpected $where: %q", gotQuery["$where"])
	}
	if gotQuery["$order"] != "report_date_as_yyyy_mm_dd DESC" {
		t.Errorf("unexpected $order: %q", gotQuery["$order"])
	}
	if gotQuery["$limit"] != "1" {
		t.Errorf("unexpected $limit: %q", gotQuery["$limit"])
	}
	if gotQuery["$offset"] != "" {
		t.Errorf("expected no $offset for first page, got %q", gotQuery["$offset"])
	}
}

func TestQueryAllPaginatesUntilShortPage(t *testing.T) {
	var offsets []int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("$offset"))
		offsets = append(offsets, offset)
		// Two full pages of 3, then a short page of 2.
		switch offset {
		case 0, 3:
			_ = json.NewEncoder(w).Encode(rowsJSON(3, offset))
		default:
			_ = json.NewEncoder(w).Encode(rowsJSON(2, offset))
		}
	})

	rows, err := c.QueryAll(context.Background(), "6dca-aqww", "", "report_date_as_yyyy_mm_dd ASC")
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}
	want := []int{0, 3, 6}
	if len(offsets) != len(want) {
		t.Fatalf("expected %d page requests, got %d (%v)", len(want), len(offsets), offsets)
	}
	for i, o := range want {
		if offsets[i] != o {
			t.Fatalf("page %d requested offset %d, want %d", i, offsets[i], o)
		}
	}
}

func TestQueryAllStopsOnEmptyFirstPage(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	})

	rows, err := c.QueryAll(context.Background(), "6dca-aqww", "", "")
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if calls != 1 {
		t.Fatalf("expected a single request, got %d", calls)
	}
}

func TestQueryReturnsFetchErrorOnBadStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such dataset", http.StatusNotFound)
	})

	_, err := c.Query(context.Background(), "bad-id", "", "", 1, 0)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", fe.StatusCode)
	}
	if fe.Dataset != "bad-id" {
		t.Fatalf("expected dataset in error, got %q", fe.Dataset)
	}
}

func TestQueryReturnsFetchErrorOnMalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	})

	_, err := c.Query(context.Background(), "6dca-aqww", "", "", 1, 0)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
}

func TestEqualsFilterEscapesQuotes(t *testing.T) {
	got := EqualsFilter("market_and_exchange_names", "O'BRIEN")
	if got != "market_and_exchange_names = 'O''BRIEN'" {
		t.Fatalf("unexpected filter: %q", got)
	}
}
