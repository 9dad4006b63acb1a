package entity

import "github.com/shopspring/decimal"

// ReportedMember is a member who has at least one time entry for the date.
type ReportedMember struct {
	Member
	Hours decimal.Decimal `json:"hours"`
}

// Reconciliation classifies every target member as reported or missing.
type Reconciliation struct {
	Missing  []Member         `json:"missing"`
	Reported []ReportedMember `json:"reported"`
}

// Complete reports whether no member is missing.
func (r Reconciliation) Complete() bool {
	return len(r.Missing) == 0
}

// WatcherIDs returns the IDs of the missing members in roster order.
func (r Reconciliation) WatcherIDs() []int {
	ids := make([]int, 0, len(r.Missing))
	for _, m := range r.Missing {
		ids = append(ids, m.ID)
	}
	return ids
}
