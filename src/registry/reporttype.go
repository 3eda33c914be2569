package registry

import "fmt"

// ReportType identifies one of the three CFTC COT report formats. Each
// format has its own Socrata dataset, its own trader-category schema and
// its own contract-name vocabulary.
type ReportType string

const (
	ReportLegacy        ReportType = "legacy"
	ReportDisaggregated ReportType = "disaggregated"
	ReportTFF           ReportType = "tff"
)

// Socrata dataset ids on publicreporting.cftc.gov.
const (
	datasetLegacy        = "6dca-aqww" // Legacy Futures Only
	datasetDisaggregated = "72hh-3qpy" // Disaggregated Futures Only
	datasetTFF           = "gpe5-46if" // Traders in Financial Futures
)

// ParseReportType validates a report type string from an external caller.
func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportLegacy, ReportDisaggregated, ReportTFF:
		return ReportType(s), nil
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// DatasetID returns the Socrata dataset id queried for the report type.
// An unknown report type is a programmer error.
func DatasetID(rt ReportType) string {
	switch rt {
	case ReportLegacy:
		return datasetLegacy
	case ReportDisaggregated:
		return datasetDisaggregated
	case ReportTFF:
		return datasetTFF
	}
	panic(fmt.Sprintf("registry: no dataset for report type %q", rt))
}

// ReportTypes lists the supported report types in display order.
func ReportTypes() []ReportType {
	return []ReportType{ReportLegacy, ReportDisaggregated, ReportTFF}
}
