package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/polestock"
)

// outcomeRenderer writes the short markdown reports printed after a command.
type outcomeRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *outcomeRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newOutcomeRenderer() *outcomeRenderer {
	return &outcomeRenderer{Builder: &strings.Builder{}}
}

// AllocationMarkdown reports where an allocated imbalance was stored.
func AllocationMarkdown(a polestock.Allocation) string {
	r := newOutcomeRenderer()
	e, l := a.Entry, a.Location
	r.Printf("## Allocated %s %s\n\n", e.Polarity, amps(e.Rating))
	r.Printf("- Balanced quantity: %d\n", e.BalancedQty)
	r.Printf("- Imbalance quantity: %d\n", e.ImbalanceQty)
	if a.Created {
		r.Printf("- Location: %s (new)\n", l.ID)
	} else {
		r.Printf("- Location: %s\n", l.ID)
	}
	r.Printf("- Location stock: %d, remaining capacity %d\n", l.Quantity, l.Remaining)
	r.Printf("- Entry: %s\n", id(e.ID))
	if a.Truncated > 0 {
		r.Printf("\n> **Warning:** location %s is full, %d units were not stored.\n", l.ID, a.Truncated)
	}
	return r.String()
}

// ReconciliationMarkdown reports the state of a reconciled entry.
func ReconciliationMarkdown(rec polestock.Reconciliation) string {
	r := newOutcomeRenderer()
	e := rec.Entry
	if rec.Closed {
		b := rec.Balanced
		r.Printf("## Balanced %s %s at %s\n\n", b.Polarity, amps(b.Rating), b.Location)
		r.Printf("The entry is closed on %s with a final report of %d.\n", b.BalanceDate, b.BalancedQty)
		return r.String()
	}
	r.Printf("## Reconciled %s %s at %s\n\n", e.Polarity, amps(e.Rating), e.Location)
	r.Printf("Outstanding imbalance: %d\n", e.ImbalanceQty)
	return r.String()
}

// AgingMarkdown reports the entries moved to the aging bucket by a sweep.
func AgingMarkdown(migrated []polestock.ImbalanceEntry) string {
	if len(migrated) == 0 {
		return ""
	}
	r := newOutcomeRenderer()
	r.Printf("## Moved to Aging\n\n")
	for _, e := range migrated {
		r.Printf("- %s %s at %s, imbalance %d, inactive for %d days\n", e.Polarity, amps(e.Rating), e.Location, e.ImbalanceQty, e.DaysInactive)
	}
	return r.String()
}
