package polestock

import (
	"slices"
)

// Snapshot is the whole state of the pole stock: the three ledgers and the
// locations. It is the unit of persistence.
//
// Engine operations never modify the snapshot they receive: they return a new
// one.
type Snapshot struct {
	Imbalanced []ImbalanceEntry `json:"imbalanced"`
	Balanced   []BalancedEntry  `json:"balanced"`
	Aging      []ImbalanceEntry `json:"aging"`
	Locations  []Location       `json:"locations"`
	// Sequence is the number of the last generated location identifier.
	Sequence int `json:"sequence,omitempty"`
}

// Empty returns a snapshot with four empty collections.
func Empty() *Snapshot {
	return &Snapshot{
		Imbalanced: []ImbalanceEntry{},
		Balanced:   []BalancedEntry{},
		Aging:      []ImbalanceEntry{},
		Locations:  []Location{},
	}
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Imbalanced: slices.Clone(s.Imbalanced),
		Balanced:   slices.Clone(s.Balanced),
		Aging:      slices.Clone(s.Aging),
		Locations:  slices.Clone(s.Locations),
		Sequence:   s.Sequence,
	}
}

// normalize repairs a decoded snapshot: nil collections become empty, entries
// without identifier get one, and the location sequence is never behind the
// generated identifiers already in use.
func (s *Snapshot) normalize() {
	if s.Imbalanced == nil {
		s.Imbalanced = []ImbalanceEntry{}
	}
	if s.Balanced == nil {
		s.Balanced = []BalancedEntry{}
	}
	if s.Aging == nil {
		s.Aging = []ImbalanceEntry{}
	}
	if s.Locations == nil {
		s.Locations = []Location{}
	}
	for i := range s.Imbalanced {
		if s.Imbalanced[i].ID == "" {
			s.Imbalanced[i].ID = newID()
		}
	}
	s.Sequence = max(s.Sequence, s.generatedSequence())
}
