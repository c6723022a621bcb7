package polestock

import (
	"iter"

	"github.com/etnz/polestock/date"
)

// BalancedEntry records an imbalance that was fully reconciled.
// Balanced entries are never modified once appended.
type BalancedEntry struct {
	Polarity    Polarity  `json:"polarity"`
	Rating      Rating    `json:"rating"`
	Location    string    `json:"location"`
	BalancedQty int       `json:"balancedQty"`
	BalanceDate date.Date `json:"balanceDate"`
}

// BalancedIn iterates over the balanced entries dated within r, in ledger order.
func (s *Snapshot) BalancedIn(r date.Range) iter.Seq[BalancedEntry] {
	return func(yield func(BalancedEntry) bool) {
		for _, b := range s.Balanced {
			if !r.Contains(b.BalanceDate) {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}
