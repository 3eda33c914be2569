package registry

// The CFTC renames contracts over time (a large batch of renames landed in
// February 2022). A symbol maps to every exchange-assigned name it has ever
// held so that history queries cover the full record; an incomplete list
// silently truncates history at the rename date. The three report formats
// assign names independently, so each has its own table.

var legacyContracts = map[string][]string{
	// Energy. All renamed Feb 2022.
	"CL": {
		"CRUDE OIL, LIGHT SWEET - NEW YORK MERCANTILE EXCHANGE",
		"WTI-PHYSICAL - NEW YORK MERCANTILE EXCHANGE",
	},
	"NG": {
		"NATURAL GAS - NEW YORK MERCANTILE EXCHANGE",
		"NAT GAS NYME - NEW YORK MERCANTILE EXCHANGE",
	},
	"RB": {
		"GASOLINE BLENDSTOCK (RBOB) - NEW YORK MERCANTILE EXCHANGE",
		"GASOLINE RBOB - NEW YORK MERCANTILE EXCHANGE",
	},
	"HO": {
		"NO. 2 HEATING OIL, N.Y. HARBOR - NEW YORK MERCANTILE EXCHANGE",
		"#2 HEATING OIL- NY HARBOR-ULSD - NEW YORK MERCANTILE EXCHANGE",
		"NY HARBOR ULSD - NEW YORK MERCANTILE EXCHANGE",
	},
	"BZ": {
		"BRENT CRUDE OIL LAST DAY - NEW YORK MERCANTILE EXCHANGE",
		"BRENT LAST DAY - NEW YORK MERCANTILE EXCHANGE",
	},

	// Metals.
	"GC": {"GOLD - COMMODITY EXCHANGE INC."},
	"SI": {"SILVER - COMMODITY EXCHANGE INC."},
	"HG": {"COPPER-GRADE #1 - COMMODITY EXCHANGE INC."},
	"PL": {"PLATINUM - NEW YORK MERCANTILE EXCHANGE"},
	"PA": {"PALLADIUM - NEW YORK MERCANTILE EXCHANGE"},

	// Grains.
	"ZC": {"CORN - CHICAGO BOARD OF TRADE"},
	"ZS": {"SOYBEANS - CHICAGO BOARD OF TRADE"},
	"ZW": {"WHEAT-SRW - CHICAGO BOARD OF TRADE"},
	"ZM": {"SOYBEAN MEAL - CHICAGO BOARD OF TRADE"},
	"ZL": {"SOYBEAN OIL - CHICAGO BOARD OF TRADE"},
	"ZO": {"OATS - CHICAGO BOARD OF TRADE"},
	"KE": {"WHEAT-HRW - CHICAGO BOARD OF TRADE"},
	"ZR": {"ROUGH RICE - CHICAGO BOARD OF TRADE"},

	// Softs.
	"CT": {"COTTON NO. 2 - ICE FUTURES U.S."},
	"KC": {"COFFEE C - ICE FUTURES U.S."},
	"SB": {"SUGAR NO. 11 - ICE FUTURES U.S."},
	"CC": {"COCOA - ICE FUTURES U.S."},
	"OJ": {"FRZN CONCENTRATED ORANGE JUICE - ICE FUTURES U.S."},

	// Livestock.
	"LE": {"LIVE CATTLE - CHICAGO MERCANTILE EXCHANGE"},
	"HE": {"LEAN HOGS - CHICAGO MERCANTILE EXCHANGE"},
	"GF": {"FEEDER CATTLE - CHICAGO MERCANTILE EXCHANGE"},

	// Equity indices.
	"ES":  {"E-MINI S&P 500 - CHICAGO MERCANTILE EXCHANGE"},
	"NQ":  {"NASDAQ MINI - CHICAGO MERCANTILE EXCHANGE"},
	"YM":  {"DOW JONES INDUSTRIAL AVG- x $5 - CHICAGO BOARD OF TRADE"},
	"RTY": {"RUSSELL E-MINI - CHICAGO MERCANTILE EXCHANGE"},
	"VX":  {"VIX FUTURES - CBOE FUTURES EXCHANGE"},
	"SP":  {"S&P 500 STOCK INDEX - CHICAGO MERCANTILE EXCHANGE"},
	"NKD": {"NIKKEI STOCK AVERAGE - CHICAGO MERCANTILE EXCHANGE"},

	// Currencies. Several renamed Feb 2022.
	"6E": {"EURO FX - CHICAGO MERCANTILE EXCHANGE"},
	"6J": {
		"JAPANESE YEN - CHICAGO MERCANTILE EXCHANGE",
		"JPN YEN - CHICAGO MERCANTILE EXCHANGE",
	},
	"6B": {
		"BRITISH POUND STERLING - CHICAGO MERCANTILE EXCHANGE",
		"BRITISH POUND - CHICAGO MERCANTILE EXCHANGE",
	},
	"6A": {
		"AUSTRALIAN DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"AUD DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6C": {
		"CANADIAN DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"CAD DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6S": {
		"SWISS FRANC - CHICAGO MERCANTILE EXCHANGE",
		"CHF FRANC - CHICAGO MERCANTILE EXCHANGE",
	},
	"6N": {
		"NEW ZEALAND DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"NZ DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6M": {
		"MEXICAN PESO - CHICAGO MERCANTILE EXCHANGE",
		"MXN PESO - CHICAGO MERCANTILE EXCHANGE",
	},
	"DX": {
		"U.S. DOLLAR INDEX - ICE FUTURES U.S.",
		"USD INDEX - ICE FUTURES U.S.",
	},
	"BTC": {"BITCOIN - CHICAGO MERCANTILE EXCHANGE"},

	// Treasuries and rates.
	"ZB":  {"U.S. TREASURY BONDS - CHICAGO BOARD OF TRADE"},
	"ZN":  {"10-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE"},
	"ZF":  {"5-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE"},
	"ZT":  {"2-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE"},
	"UB":  {"ULTRA U.S. TREASURY BONDS - CHICAGO BOARD OF TRADE"},
	"TN":  {"ULTRA 10-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE"},
	"ED":  {"EURODOLLAR - CHICAGO MERCANTILE EXCHANGE"},
	"SR3": {"3-MONTH SOFR - CHICAGO MERCANTILE EXCHANGE"},
}

// TFF covers financials only and uses its own name vocabulary. Names are
// not derivable from the legacy table; the current TFF treasury names drop
// tokens irregularly.
var tffContracts = map[string][]string{
	// Equity indices.
	"ES": {
		"E-MINI S&P 500 STOCK INDEX - CHICAGO MERCANTILE EXCHANGE",
		"E-MINI S&P 500 - CHICAGO MERCANTILE EXCHANGE",
	},
	"NQ": {
		"NASDAQ-100 STOCK INDEX (MINI) - CHICAGO MERCANTILE EXCHANGE",
		"NASDAQ MINI - CHICAGO MERCANTILE EXCHANGE",
	},
	"YM": {
		"DJIA x $5 - CHICAGO BOARD OF TRADE",
		"DOW JONES INDUSTRIAL AVG- x $5 - CHICAGO BOARD OF TRADE",
	},
	"RTY": {
		"RUSSELL 2000 MINI - CHICAGO MERCANTILE EXCHANGE",
		"RUSSELL E-MINI - CHICAGO MERCANTILE EXCHANGE",
	},
	"VX":  {"VIX FUTURES - CBOE FUTURES EXCHANGE"},
	"NKD": {"NIKKEI STOCK AVERAGE - CHICAGO MERCANTILE EXCHANGE"},
	"SP":  {"S&P 500 STOCK INDEX - CHICAGO MERCANTILE EXCHANGE"},

	// Currencies.
	"6E": {"EURO FX - CHICAGO MERCANTILE EXCHANGE"},
	"6J": {
		"JAPANESE YEN - CHICAGO MERCANTILE EXCHANGE",
		"JPN YEN - CHICAGO MERCANTILE EXCHANGE",
	},
	"6B": {
		"BRITISH POUND STERLING - CHICAGO MERCANTILE EXCHANGE",
		"BRITISH POUND - CHICAGO MERCANTILE EXCHANGE",
	},
	"6A": {
		"AUSTRALIAN DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"AUD DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6C": {
		"CANADIAN DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"CAD DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6S": {
		"SWISS FRANC - CHICAGO MERCANTILE EXCHANGE",
		"CHF FRANC - CHICAGO MERCANTILE EXCHANGE",
	},
	"6N": {
		"NEW ZEALAND DOLLAR - CHICAGO MERCANTILE EXCHANGE",
		"NZ DOLLAR - CHICAGO MERCANTILE EXCHANGE",
	},
	"6M": {
		"MEXICAN PESO - CHICAGO MERCANTILE EXCHANGE",
		"MXN PESO - CHICAGO MERCANTILE EXCHANGE",
	},
	"DX": {
		"U.S. DOLLAR INDEX - ICE FUTURES U.S.",
		"USD INDEX - ICE FUTURES U.S.",
	},
	"BTC": {"BITCOIN - CHICAGO MERCANTILE EXCHANGE"},

	// Treasuries and rates.
	"ZB": {
		"UST BOND - CHICAGO BOARD OF TRADE",
		"U.S. TREASURY BONDS - CHICAGO BOARD OF TRADE",
	},
	"ZN": {
		"10 YR UST NOTE - CHICAGO BOARD OF TRADE",
		"10-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE",
	},
	"ZF": {
		"5 YR UST NOTE - CHICAGO BOARD OF TRADE",
		"5-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE",
	},
	"ZT": {
		"2 YR UST NOTE - CHICAGO BOARD OF TRADE",
		"2-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE",
	},
	"UB": {
		"ULTRA UST BOND - CHICAGO BOARD OF TRADE",
		"ULTRA U.S. TREASURY BONDS - CHICAGO BOARD OF TRADE",
	},
	"TN": {
		"ULTRA 10 YR UST NOTE - CHICAGO BOARD OF TRADE",
		"ULTRA 10-YEAR U.S. TREASURY NOTES - CHICAGO BOARD OF TRADE",
	},
	"ED": {"EURODOLLAR - CHICAGO MERCANTILE EXCHANGE"},
	"SR3": {
		"3M SOFR - CHICAGO MERCANTILE EXCHANGE",
		"3-MONTH SOFR - CHICAGO MERCANTILE EXCHANGE",
	},
}

// Disaggregated covers physical commodities only, again with its own names
// (copper and Chicago wheat differ from the legacy table).
var disaggContracts = map[string][]string{
	// Energy.
	"CL": {
		"CRUDE OIL, LIGHT SWEET - NEW YORK MERCANTILE EXCHANGE",
		"WTI-PHYSICAL - NEW YORK MERCANTILE EXCHANGE",
	},
	"NG": {
		"NATURAL GAS - NEW YORK MERCANTILE EXCHANGE",
		"NAT GAS NYME - NEW YORK MERCANTILE EXCHANGE",
	},
	"RB": {
		"GASOLINE BLENDSTOCK (RBOB) - NEW YORK MERCANTILE EXCHANGE",
		"GASOLINE RBOB - NEW YORK MERCANTILE EXCHANGE",
	},
	"HO": {
		"NO. 2 HEATING OIL, N.Y. HARBOR - NEW YORK MERCANTILE EXCHANGE",
		"#2 HEATING OIL- NY HARBOR-ULSD - NEW YORK MERCANTILE EXCHANGE",
		"NY HARBOR ULSD - NEW YORK MERCANTILE EXCHANGE",
	},
	"BZ": {
		"BRENT CRUDE OIL LAST DAY - NEW YORK MERCANTILE EXCHANGE",
		"BRENT LAST DAY - NEW YORK MERCANTILE EXCHANGE",
	},

	// Metals.
	"GC": {"GOLD - COMMODITY EXCHANGE INC."},
	"SI": {"SILVER - COMMODITY EXCHANGE INC."},
	"HG": {
		"COPPER-GRADE #1 - COMMODITY EXCHANGE INC.",
		"COPPER- #1 - COMMODITY EXCHANGE INC.",
	},
	"PL": {"PLATINUM - NEW YORK MERCANTILE EXCHANGE"},
	"PA": {"PALLADIUM - NEW YORK MERCANTILE EXCHANGE"},

	// Grains.
	"ZC": {"CORN - CHICAGO BOARD OF TRADE"},
	"ZS": {"SOYBEANS - CHICAGO BOARD OF TRADE"},
	"ZW": {
		"WHEAT-SRW - CHICAGO BOARD OF TRADE",
		"WHEAT - CHICAGO BOARD OF TRADE",
	},
	"ZM": {"SOYBEAN MEAL - CHICAGO BOARD OF TRADE"},
	"ZL": {"SOYBEAN OIL - CHICAGO BOARD OF TRADE"},
	"ZO": {"OATS - CHICAGO BOARD OF TRADE"},
	"KE": {
		"WHEAT-HRW - CHICAGO BOARD OF TRADE",
		"WHEAT-HRW - KANSAS CITY BOARD OF TRADE",
	},
	"ZR": {"ROUGH RICE - CHICAGO BOARD OF TRADE"},

	// Softs.
	"CT": {"COTTON NO. 2 - ICE FUTURES U.S."},
	"KC": {"COFFEE C - ICE FUTURES U.S."},
	"SB": {"SUGAR NO. 11 - ICE FUTURES U.S."},
	"CC": {"COCOA - ICE FUTURES U.S."},
	"OJ": {"FRZN CONCENTRATED ORANGE JUICE - ICE FUTURES U.S."},

	// Livestock.
	"LE": {"LIVE CATTLE - CHICAGO MERCANTILE EXCHANGE"},
	"HE": {"LEAN HOGS - CHICAGO MERCANTILE EXCHANGE"},
	"GF": {"FEEDER CATTLE - CHICAGO MERCANTILE EXCHANGE"},
}

func contractTable(rt ReportType) map[string][]string {
	switch rt {
	case ReportLegacy:
		return legacyContracts
	case ReportDisaggregated:
		return disaggContracts
	case ReportTFF:
		return tffContracts
	}
	return nil
}

// ResolveNames returns every contract name a symbol has held under the
// report type, or nil when the symbol is not covered by that report. Empty
// means "no data", not an error: this is how the per-report asset-class
// partition is enforced.
func ResolveNames(symbol string, rt ReportType) []string {
	table := contractTable(rt)
	if table == nil {
		return nil
	}
	return table[symbol]
}

// Symbols returns the symbols covered by a report type, unordered.
func Symbols(rt ReportType) []string {
	table := contractTable(rt)
	out := make([]string, 0, len(table))
	for sym := range table {
		out = append(out, sym)
	}
	return out
}
