package polestock

import (
	"testing"
	"time"

	"github.com/etnz/polestock/date"
	"github.com/google/go-cmp/cmp"
)

func TestNewDashboard(t *testing.T) {
	s := sample(t)
	s.Imbalanced[0].DaysInactive = AgingThreshold // overdue, not swept yet
	d := NewDashboard(s)

	if len(d.Imbalanced) != 1 || !d.Imbalanced[0].Overdue {
		t.Errorf("open rows = %+v, want one overdue row", d.Imbalanced)
	}
	want := struct{ Open, Balanced, Aging, Stored int }{1, 3, 5, 9}
	got := struct{ Open, Balanced, Aging, Stored int }{d.OpenQty, d.BalancedQty, d.AgingQty, d.StoredQty}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSummary(t *testing.T) {
	s, _ := mustAllocate(t, Empty(), alloc(ThreePole, 32, 3, 0, 0))
	s, _ = mustAllocate(t, s, alloc(TwoPole, 20, 4, 1))
	s, _ = mustAllocate(t, s, alloc(ThreePole, 16, 2, 0, 0))
	s, _ = mustAllocate(t, s, alloc(TwoPole, 20, 2, 0))

	want := &Summary{
		Lines: []SummaryLine{
			{Polarity: TwoPole, Rating: R(20), Entries: 2, ImbalanceQty: 5, Locations: []string{"A2"}},
			{Polarity: ThreePole, Rating: R(16), Entries: 1, ImbalanceQty: 2, Locations: []string{"A3"}},
			{Polarity: ThreePole, Rating: R(32), Entries: 1, ImbalanceQty: 3, Locations: []string{"A1"}},
		},
		Total: 10,
	}
	if diff := cmp.Diff(want, NewSummary(s)); diff != "" {
		t.Errorf("NewSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBalanceReport(t *testing.T) {
	s := Empty()
	for i, day := range []string{"2025-04-30", "2025-05-02", "2025-05-31", "2025-06-01"} {
		s.Balanced = append(s.Balanced, BalancedEntry{Polarity: TwoPole, Rating: R(20), Location: "A1", BalancedQty: i + 1, BalanceDate: date.MustParse(day)})
	}
	report := NewBalanceReport(s, date.NewRange(date.New(2025, time.May, 15), date.Monthly))
	if len(report.Entries) != 2 || report.Total != 5 {
		t.Errorf("NewBalanceReport() = %+v, want the 2 May entries totaling 5", report)
	}
}

func TestOpenOptions(t *testing.T) {
	s, _ := mustAllocate(t, Empty(), alloc(ThreePole, 32, 3, 0, 0))
	s, _ = mustAllocate(t, s, alloc(TwoPole, 20, 4, 1))
	s, _ = mustAllocate(t, s, alloc(TwoPole, 32, 2, 0))

	var polarities []Polarity
	for p := range s.OpenPolarities() {
		polarities = append(polarities, p)
	}
	var ratings []string
	for r := range s.OpenRatings() {
		ratings = append(ratings, r.String())
	}
	var locations []string
	for l := range s.OpenLocations() {
		locations = append(locations, l)
	}
	if diff := cmp.Diff([]Polarity{ThreePole, TwoPole}, polarities); diff != "" {
		t.Errorf("OpenPolarities() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"32", "20"}, ratings); diff != "" {
		t.Errorf("OpenRatings() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A1", "A2"}, locations); diff != "" {
		t.Errorf("OpenLocations() mismatch (-want +got):\n%s", diff)
	}
}
