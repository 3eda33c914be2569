package registry

import "fmt"

// Shared wire field names present in every report format.
const (
	FieldContractName = "market_and_exchange_names"
	FieldReportDate   = "report_date_as_yyyy_mm_dd"
	FieldOpenInterest = "open_interest_all"
	FieldOIChange     = "change_in_open_interest_all"
)

// RoleFields names the long/short wire fields for one trader category and
// the week-over-week change fields where the dataset carries them.
type RoleFields struct {
	Label       string
	LongField   string
	ShortField  string
	LongChange  string
	ShortChange string
}

// Schema maps a report format's trader categories, in role order, to the
// wire fields of its dataset.
type Schema struct {
	Roles []RoleFields
}

// The field vocabularies are irregular upstream: some fields drop the _all
// suffix, and the disaggregated swap dealer short field carries a double
// underscore. These literals must match the datasets exactly.
var schemas = map[ReportType]Schema{
	ReportLegacy: {
		Roles: []RoleFields{
			{
				Label:       "non_commercial",
				LongField:   "noncomm_positions_long_all",
				ShortField:  "noncomm_positions_short_all",
				LongChange:  "change_in_noncomm_long_all",
				ShortChange: "change_in_noncomm_short_all",
			},
			{
				Label:       "commercial",
				LongField:   "comm_positions_long_all",
				ShortField:  "comm_positions_short_all",
				LongChange:  "change_in_comm_long_all",
				ShortChange: "change_in_comm_short_all",
			},
			{
				Label:       "non_reportable",
				LongField:   "nonrept_positions_long_all",
				ShortField:  "nonrept_positions_short_all",
				LongChange:  "change_in_nonrept_long_all",
				ShortChange: "change_in_nonrept_short_all",
			},
		},
	},
	ReportDisaggregated: {
		Roles: []RoleFields{
			{
				Label:      "producer_merchant",
				LongField:  "prod_merc_positions_long",
				ShortField: "prod_merc_positions_short",
			},
			{
				Label:      "swap_dealer",
				LongField:  "swap_positions_long_all",
				ShortField: "swap__positions_short_all",
			},
			{
				Label:      "managed_money",
				LongField:  "m_money_positions_long_all",
				ShortField: "m_money_positions_short_all",
			},
			{
				Label:      "other_reportable",
				LongField:  "other_rept_positions_long",
				ShortField: "other_rept_positions_short",
			},
		},
	},
	ReportTFF: {
		Roles: []RoleFields{
			{
				Label:      "dealer",
				LongField:  "dealer_positions_long_all",
				ShortField: "dealer_positions_short_all",
			},
			{
				Label:      "asset_manager",
				LongField:  "asset_mgr_positions_long",
				ShortField: "asset_mgr_positions_short",
			},
			{
				Label:      "leveraged_funds",
				LongField:  "lev_money_positions_long",
				ShortField: "lev_money_positions_short",
			},
			{
				Label:      "other_reportable",
				LongField:  "other_rept_positions_long",
				ShortField: "other_rept_positions_short",
			},
		},
	},
}

// RoleSchema returns the trader-category schema for a report type. An
// unknown report type is a programmer error.
func RoleSchema(rt ReportType) Schema {
	s, ok := schemas[rt]
	if !ok {
		panic(fmt.Sprintf("registry: no schema for report type %q", rt))
	}
	return s
}

// RoleCount returns the number of trader categories in the report format:
// 3 for Legacy, 4 for Disaggregated and TFF.
func RoleCount(rt ReportType) int {
	return len(RoleSchema(rt).Roles)
}

// RoleLabel returns the display label of the zero-based role index.
func RoleLabel(rt ReportType, role int) string {
	s := RoleSchema(rt)
	if role < 0 || role >= len(s.Roles) {
		panic(fmt.Sprintf("registry: role %d out of range for %q", role, rt))
	}
	return s.Roles[role].Label
}

// RoleLabels returns the labels of all trader categories in role order.
func RoleLabels(rt ReportType) []string {
	s := RoleSchema(rt)
	labels := make([]string, 0, len(s.Roles))
	for _, r := range s.Roles {
		labels = append(labels, r.Label)
	}
	return labels
}
