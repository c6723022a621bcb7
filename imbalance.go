package polestock

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// newID generates imbalance entry identifiers.
var newID = uuid.NewString

// ImbalanceEntry is an open imbalance record stored at a location.
//
// An entry leaves the open set the moment it is fully reconciled. The only
// open entry with a zero ImbalanceQty is the one recorded for a pole group
// that was already balanced at allocation time.
type ImbalanceEntry struct {
	ID           string
	Polarity     Polarity
	Rating       Rating
	ImbalanceQty int    // outstanding quantity still to be leveled
	BalancedQty  int    // quantity leveled across all positions at allocation time
	Location     string // identifier of the location holding the stock
	DaysInactive int
}

// Overdue reports whether the entry reached the aging threshold.
func (e ImbalanceEntry) Overdue() bool { return e.DaysInactive >= AgingThreshold }

// matches reports whether e is the target of a balance report.
func (e ImbalanceEntry) matches(polarity Polarity, rating Rating, location string) bool {
	return e.Polarity == polarity && e.Rating.Equal(rating) && e.Location == location
}

// MarshalJSON implements the json.Marshaler interface for ImbalanceEntry.
func (e ImbalanceEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", e.ID)
	w.Append("polarity", e.Polarity)
	w.Append("rating", e.Rating)
	w.Append("imbalanceQty", e.ImbalanceQty)
	w.Append("balancedQty", e.BalancedQty)
	w.Append("location", e.Location)
	w.Append("daysInactive", e.DaysInactive)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for ImbalanceEntry.
func (e *ImbalanceEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string   `json:"id"`
		Polarity     Polarity `json:"polarity"`
		Rating       Rating   `json:"rating"`
		ImbalanceQty int      `json:"imbalanceQty"`
		BalancedQty  int      `json:"balancedQty"`
		Location     string   `json:"location"`
		DaysInactive int      `json:"daysInactive"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = ImbalanceEntry(temp)
	return nil
}

// DeleteImbalance removes the open entry with that identifier.
func DeleteImbalance(s *Snapshot, id string) (*Snapshot, ImbalanceEntry, error) {
	for i, e := range s.Imbalanced {
		if e.ID == id {
			next := s.Clone()
			next.Imbalanced = append(next.Imbalanced[:i], next.Imbalanced[i+1:]...)
			return next, e, nil
		}
	}
	return s, ImbalanceEntry{}, fmt.Errorf("imbalance entry %q: %w", id, ErrNotFound)
}

// OpenPolarities iterates over the distinct polarities of open entries, in first-seen order.
func (s *Snapshot) OpenPolarities() iter.Seq[Polarity] {
	return distinct(s.Imbalanced, func(e ImbalanceEntry) Polarity { return e.Polarity })
}

// OpenRatings iterates over the distinct ratings of open entries, in first-seen order.
func (s *Snapshot) OpenRatings() iter.Seq[Rating] {
	return func(yield func(Rating) bool) {
		visited := make(map[string]struct{})
		for _, e := range s.Imbalanced {
			// decimal values are not comparable, their canonical string is.
			key := e.Rating.String()
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			if !yield(e.Rating) {
				return
			}
		}
	}
}

// OpenLocations iterates over the distinct locations of open entries, in first-seen order.
func (s *Snapshot) OpenLocations() iter.Seq[string] {
	return distinct(s.Imbalanced, func(e ImbalanceEntry) string { return e.Location })
}

func distinct[K comparable](entries []ImbalanceEntry, key func(ImbalanceEntry) K) iter.Seq[K] {
	return func(yield func(K) bool) {
		visited := make(map[K]struct{})
		for _, e := range entries {
			k := key(e)
			if _, ok := visited[k]; ok {
				continue
			}
			visited[k] = struct{}{}
			if !yield(k) {
				return
			}
		}
	}
}
