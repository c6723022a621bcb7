package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/date"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is the parsed structure of a rendered markdown report.
type document struct {
	headings []string
	tables   [][][]string // rows of cells, header row first
}

// parse parses markdown with the table extension and collects its headings and tables.
func parse(t *testing.T, markdown string) document {
	t.Helper()
	src := []byte(markdown)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			doc.headings = append(doc.headings, plain(n, src))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			var rows [][]string
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, plain(cell, src))
				}
				rows = append(rows, cells)
			}
			doc.tables = append(doc.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return doc
}

// plain returns the text content of n, without markup.
func plain(n ast.Node, src []byte) string {
	var sb strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
		case *ast.String:
			sb.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// stock returns a snapshot with an open, a balanced and an aging entry.
func stock(t *testing.T) *polestock.Snapshot {
	t.Helper()
	s := polestock.Empty()
	var err error
	for _, req := range []polestock.AllocationRequest{
		{Polarity: polestock.ThreePole, Rating: polestock.R(20), Counts: []int{10, 7, 9}},
		{Polarity: polestock.TwoPole, Rating: polestock.R(32), Counts: []int{4, 1}},
	} {
		if s, _, err = polestock.Allocate(s, req); err != nil {
			t.Fatal(err)
		}
	}
	for range polestock.AgingThreshold {
		s, _ = polestock.Age(s)
	}
	s, _, err = polestock.Allocate(s, polestock.AllocationRequest{Polarity: polestock.TwoPole, Rating: polestock.R(20), Counts: []int{3, 1}})
	if err != nil {
		t.Fatal(err)
	}
	s, _, err = polestock.Reconcile(s, polestock.ReconcileRequest{Polarity: polestock.TwoPole, Rating: polestock.R(20), Location: "A1", Qty: 2}, date.New(2025, time.July, 1))
	if err != nil {
		t.Fatal(err)
	}
	s, _, err = polestock.Allocate(s, polestock.AllocationRequest{Polarity: polestock.FourPole, Rating: polestock.R(16), Counts: []int{1, 1, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDashboardMarkdown(t *testing.T) {
	s := stock(t)
	doc := parse(t, DashboardMarkdown(polestock.NewDashboard(s)))

	wantHeadings := []string{"Pole Stock", "Imbalanced Poles", "Balanced Poles", "Aging Poles", "Locations"}
	if diff := cmp.Diff(wantHeadings, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if len(doc.tables) != 5 {
		t.Fatalf("got %d tables, want 5", len(doc.tables))
	}

	totals := [][]string{
		{"Open Imbalance", "Balanced", "Aging", "Stored"},
		{"1", "2", "8", "11"},
	}
	if diff := cmp.Diff(totals, doc.tables[0]); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}

	open := doc.tables[1]
	if len(open) != 2 {
		t.Fatalf("got %d open rows, want 1", len(open)-1)
	}
	if diff := cmp.Diff([]string{"4-Pole", "16A", "1", "1", "A3", "0"}, open[1][:6]); diff != "" {
		t.Errorf("open row mismatch (-want +got):\n%s", diff)
	}
	if open[1][6] != s.Imbalanced[0].ID {
		t.Errorf("open row ID = %q, want %q", open[1][6], s.Imbalanced[0].ID)
	}

	balanced := [][]string{
		{"Date", "Polarity", "Rating", "Location", "Quantity"},
		{"2025-07-01", "2-Pole", "20A", "A1", "2"},
	}
	if diff := cmp.Diff(balanced, doc.tables[2]); diff != "" {
		t.Errorf("balanced mismatch (-want +got):\n%s", diff)
	}

	aging := [][]string{
		{"Polarity", "Rating", "Imbalance", "Location", "Days Inactive"},
		{"3-Pole", "20A", "5", "A1", "15"},
		{"2-Pole", "32A", "3", "A2", "15"},
	}
	if diff := cmp.Diff(aging, doc.tables[3]); diff != "" {
		t.Errorf("aging mismatch (-want +got):\n%s", diff)
	}

	locations := [][]string{
		{"Location", "Rating", "Polarity", "Quantity", "Remaining", "Status"},
		{"A1", "20A", "3-Pole", "7", "18", "Active"},
		{"A2", "32A", "2-Pole", "3", "22", "Active"},
		{"A3", "16A", "4-Pole", "1", "24", "Active"},
	}
	if diff := cmp.Diff(locations, doc.tables[4]); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardMarkdownEmpty(t *testing.T) {
	out := DashboardMarkdown(polestock.NewDashboard(polestock.Empty()))
	doc := parse(t, out)
	if len(doc.tables) != 1 {
		t.Errorf("got %d tables, want only the totals", len(doc.tables))
	}
	for _, want := range []string{"No open imbalance.", "No balanced entries.", "No aging imbalance.", "No locations."} {
		if !strings.Contains(out, want) {
			t.Errorf("empty dashboard does not say %q", want)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	doc := parse(t, SummaryMarkdown(polestock.NewSummary(stock(t))))
	want := [][]string{
		{"Polarity", "Rating", "Entries", "Imbalance", "Overdue", "Locations"},
		{"4-Pole", "16A", "1", "1", "0", "A3"},
	}
	if len(doc.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.tables))
	}
	if diff := cmp.Diff(want, doc.tables[0]); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBalanceReportMarkdown(t *testing.T) {
	r := polestock.NewBalanceReport(stock(t), date.NewRange(date.New(2025, time.July, 1), date.Weekly))
	out := BalanceReportMarkdown(r)
	if !strings.Contains(out, "Total balanced: 2") {
		t.Errorf("report does not show the total:\n%s", out)
	}
	doc := parse(t, out)
	if len(doc.tables) != 1 || len(doc.tables[0]) != 2 {
		t.Errorf("tables = %v, want one table with one entry", doc.tables)
	}
}

func TestAllocationMarkdown(t *testing.T) {
	_, a, err := polestock.Allocate(polestock.Empty(), polestock.AllocationRequest{Polarity: polestock.ThreePole, Rating: polestock.R(20), Counts: []int{10, 7, 9}})
	if err != nil {
		t.Fatal(err)
	}
	out := AllocationMarkdown(a)
	for _, want := range []string{"## Allocated 3-Pole 20A", "- Imbalance quantity: 5", "- Location: A1 (new)", "remaining capacity 20"} {
		if !strings.Contains(out, want) {
			t.Errorf("AllocationMarkdown() does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("AllocationMarkdown() warns without truncation:\n%s", out)
	}
}

func TestAgingMarkdown(t *testing.T) {
	if got := AgingMarkdown(nil); got != "" {
		t.Errorf("AgingMarkdown(nil) = %q, want empty", got)
	}
	out := AgingMarkdown([]polestock.ImbalanceEntry{{Polarity: polestock.TwoPole, Rating: polestock.R(32), ImbalanceQty: 3, Location: "A2", DaysInactive: 15}})
	if want := "- 2-Pole 32A at A2, imbalance 3, inactive for 15 days\n"; !strings.Contains(out, want) {
		t.Errorf("AgingMarkdown() = %q, want it to contain %q", out, want)
	}
}
