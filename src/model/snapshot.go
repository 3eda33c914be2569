package model

// RolePosition holds one trader category's positioning for a single report
// period. Net is always Long - Short.
type RolePosition struct {
	Label  string  `json:"label"`
	Long   int64   `json:"long"`
	Short  int64   `json:"short"`
	Net    int64   `json:"net"`
	Change int64   `json:"change"`
	Pct    float64 `json:"pct"`
}

// Snapshot is the normalized latest-report view for one symbol.
type Snapshot struct {
	ReportDate   string         `json:"report_date"`
	OpenInterest int64          `json:"open_interest"`
	OIChange     int64          `json:"oi_change"`
	Roles        []RolePosition `json:"roles"`
}

// NoDataDate is the sentinel report date used when a symbol has no rows
// upstream or the fetch degraded to an empty result.
const NoDataDate = "No Data Available"

// NewEmptySnapshot returns the zero-valued snapshot with one zeroed role
// entry per label.
func NewEmptySnapshot(labels []string) *Snapshot {
	roles := make([]RolePosition, 0, len(labels))
	for _, label := range labels {
		roles = append(roles, RolePosition{Label: label})
	}
	return &Snapshot{
		ReportDate: NoDataDate,
		Roles:      roles,
	}
}

// Role returns the position entry for the given label, or nil.
func (s *Snapshot) Role(label string) *RolePosition {
	for i := range s.Roles {
		if s.Roles[i].Label == label {
			return &s.Roles[i]
		}
	}
	return nil
}

// IsEmpty reports whether the snapshot is the no-data sentinel.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || s.ReportDate == NoDataDate
}
