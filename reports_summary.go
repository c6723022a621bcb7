package polestock

import (
	"cmp"
	"slices"
)

// SummaryLine aggregates the open imbalance of one pole group.
type SummaryLine struct {
	Polarity     Polarity
	Rating       Rating
	Entries      int      // number of open entries
	ImbalanceQty int      // total outstanding imbalance
	Overdue      int      // number of entries that reached the aging threshold
	Locations    []string // distinct locations, in first-seen order
}

// Summary provides the open imbalance per polarity and rating.
type Summary struct {
	Lines []SummaryLine // sorted by polarity, then rating
	Total int
}

// NewSummary aggregates the open entries of s.
func NewSummary(s *Snapshot) *Summary {
	summary := &Summary{Lines: []SummaryLine{}}
	index := make(map[string]int)
	for _, e := range s.Imbalanced {
		key := e.Polarity.String() + "/" + e.Rating.String()
		i, ok := index[key]
		if !ok {
			i = len(summary.Lines)
			index[key] = i
			summary.Lines = append(summary.Lines, SummaryLine{Polarity: e.Polarity, Rating: e.Rating})
		}
		line := &summary.Lines[i]
		line.Entries++
		line.ImbalanceQty += e.ImbalanceQty
		if e.Overdue() {
			line.Overdue++
		}
		if !slices.Contains(line.Locations, e.Location) {
			line.Locations = append(line.Locations, e.Location)
		}
		summary.Total += e.ImbalanceQty
	}

	slices.SortStableFunc(summary.Lines, func(a, b SummaryLine) int {
		return cmp.Or(
			cmp.Compare(a.Polarity, b.Polarity),
			a.Rating.Cmp(b.Rating),
		)
	})
	return summary
}
