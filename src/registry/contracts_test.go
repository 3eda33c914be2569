package registry

import (
	"reflect"
	"testing"
)

// An incomplete name list silently truncates history at the rename date, so
// these assert exact membership rather than non-emptiness.
func TestResolveNamesExactMembership(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		report ReportType
		want   []string
	}{
		{
			name:   "gold legacy has a single unrenamed contract",
			symbol: "GC",
			report: ReportLegacy,
			want:   []string{"GOLD - COMMODITY EXCHANGE INC."},
		},
		{
			name:   "natural gas legacy carries the 2022 rename",
			symbol: "NG",
			report: ReportLegacy,
			want: []string{
				"NATURAL GAS - NEW YORK MERCANTILE EXCHANGE",
				"NAT GAS NYME - NEW YORK MERCANTILE EXCHANGE",
			},
		},
		{
			name:   "heating oil legacy has three name generations",
			symbol: "HO",
			report: ReportLegacy,
			want: []string{
				"NO. 2 HEATING OIL, N.Y. HARBOR - NEW YORK MERCANTILE EXCHANGE",
				"#2 HEATING OIL- NY HARBOR-ULSD - NEW YORK MERCANTILE EXCHANGE",
				"NY HARBOR ULSD - NEW YORK MERCANTILE EXCHANGE",
			},
		},
		{
			name:   "yen legacy carries the 2022 rename",
			symbol: "6J",
			report: ReportLegacy,
			want: []string{
				"JAPANESE YEN - CHICAGO MERCANTILE EXCHANGE",
				"JPN YEN - CHICAGO MERCANTILE EXCHANGE",
			},
		},
		{
			name:   "treasury bond TFF name differs from legacy",
			symbol: "ZB",
			report: ReportTFF,
			want: []string{
				"UST BOND - CHICAGO BOARD OF TRADE",
				"U.S. TREASURY BONDS - CHICAGO BOARD OF TRADE",
			},
		},
		{
			name:   "e-mini S&P TFF name differs from legacy",
			symbol: "ES",
			report: ReportTFF,
			want: []string{
				"E-MINI S&P 500 STOCK INDEX - CHICAGO MERCANTILE EXCHANGE",
				"E-MINI S&P 500 - CHICAGO MERCANTILE EXCHANGE",
			},
		},
		{
			name:   "copper disaggregated name differs from legacy",
			symbol: "HG",
			report: ReportDisaggregated,
			want: []string{
				"COPPER-GRADE #1 - COMMODITY EXCHANGE INC.",
				"COPPER- #1 - COMMODITY EXCHANGE INC.",
			},
		},
		{
			name:   "chicago wheat disaggregated includes the pre-SRW name",
			symbol: "ZW",
			report: ReportDisaggregated,
			want: []string{
				"WHEAT-SRW - CHICAGO BOARD OF TRADE",
				"WHEAT - CHICAGO BOARD OF TRADE",
			},
		},
		{
			name:   "KC wheat disaggregated includes the KCBT name",
			symbol: "KE",
			report: ReportDisaggregated,
			want: []string{
				"WHEAT-HRW - CHICAGO BOARD OF TRADE",
				"WHEAT-HRW - KANSAS CITY BOARD OF TRADE",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNames(tt.symbol, tt.report)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ResolveNames(%q, %q) = %v, want %v", tt.symbol, tt.report, got, tt.want)
			}
		})
	}
}

func TestResolveNamesAssetClassPartition(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		report ReportType
	}{
		{"crude oil is not a financial", "CL", ReportTFF},
		{"gold is not a financial", "GC", ReportTFF},
		{"e-mini S&P is not a commodity", "ES", ReportDisaggregated},
		{"euro is not a commodity", "6E", ReportDisaggregated},
		{"10y note is not a commodity", "ZN", ReportDisaggregated},
		{"unknown symbol", "NOPE", ReportLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveNames(tt.symbol, tt.report); len(got) != 0 {
				t.Fatalf("ResolveNames(%q, %q) = %v, want empty", tt.symbol, tt.report, got)
			}
		})
	}
}

func TestLegacyCoversAllSymbols(t *testing.T) {
	// Legacy spans every asset class, so anything listed for TFF or
	// Disaggregated must also resolve under Legacy.
	for _, rt := range []ReportType{ReportTFF, ReportDisaggregated} {
		for _, sym := range Symbols(rt) {
			if len(ResolveNames(sym, ReportLegacy)) == 0 {
				t.Errorf("symbol %s listed for %s but missing from legacy", sym, rt)
			}
		}
	}
}

func TestSymbolsNonEmptyNames(t *testing.T) {
	for _, rt := range ReportTypes() {
		for _, sym := range Symbols(rt) {
			if len(ResolveNames(sym, rt)) == 0 {
				t.Errorf("symbol %s has an empty name list under %s", sym, rt)
			}
		}
	}
}
