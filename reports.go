package polestock

import (
	"github.com/etnz/polestock/date"
)

// DashboardRow is an open imbalance entry as shown on the dashboard.
type DashboardRow struct {
	ImbalanceEntry
	Overdue bool // reached the aging threshold
}

// Dashboard is the full view of the stock: the three ledgers and the locations.
type Dashboard struct {
	Imbalanced []DashboardRow
	Balanced   []BalancedEntry
	Aging      []ImbalanceEntry
	Locations  []Location

	OpenQty     int // total outstanding imbalance
	BalancedQty int // total quantity in the balance ledger
	AgingQty    int // total outstanding imbalance in the aging bucket
	StoredQty   int // total quantity stored in locations
}

// NewDashboard returns the dashboard of s.
func NewDashboard(s *Snapshot) *Dashboard {
	d := &Dashboard{
		Imbalanced: make([]DashboardRow, 0, len(s.Imbalanced)),
		Balanced:   s.Balanced,
		Aging:      s.Aging,
		Locations:  s.Locations,
	}
	for _, e := range s.Imbalanced {
		d.Imbalanced = append(d.Imbalanced, DashboardRow{ImbalanceEntry: e, Overdue: e.Overdue()})
		d.OpenQty += e.ImbalanceQty
	}
	for _, b := range s.Balanced {
		d.BalancedQty += b.BalancedQty
	}
	for _, e := range s.Aging {
		d.AgingQty += e.ImbalanceQty
	}
	for _, l := range s.Locations {
		d.StoredQty += l.Quantity
	}
	return d
}

// BalanceReport lists the imbalances reconciled over a period.
type BalanceReport struct {
	Range   date.Range
	Entries []BalancedEntry
	Total   int
}

// NewBalanceReport returns the balanced entries dated within r.
func NewBalanceReport(s *Snapshot, r date.Range) *BalanceReport {
	report := &BalanceReport{Range: r, Entries: []BalancedEntry{}}
	for b := range s.BalancedIn(r) {
		report.Entries = append(report.Entries, b)
		report.Total += b.BalancedQty
	}
	return report
}
