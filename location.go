package polestock

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Capacity is the fixed number of units a location can hold.
const Capacity = 25

// Location status values, derived from the current quantity.
const (
	StatusActive   = "Active"
	StatusBalanced = "Balanced"
)

// Location is a storage slot for imbalanced stock.
//
// Quantity + Remaining always equals Capacity.
type Location struct {
	ID        string
	Rating    Rating
	Polarity  Polarity
	Quantity  int // units currently stored
	Remaining int // units that can still be stored
}

// newLocation creates a location holding initial units.
// Units beyond Capacity are not stored.
func newLocation(id string, rating Rating, polarity Polarity, initial int) Location {
	stored := min(max(initial, 0), Capacity)
	return Location{
		ID:        id,
		Rating:    rating,
		Polarity:  polarity,
		Quantity:  stored,
		Remaining: Capacity - stored,
	}
}

// Status returns "Active" while the location holds stock, "Balanced" otherwise.
func (l Location) Status() string {
	if l.Quantity > 0 {
		return StatusActive
	}
	return StatusBalanced
}

// consume stores up to qty units and returns how many were actually stored.
func (l *Location) consume(qty int) int {
	n := min(max(qty, 0), l.Remaining)
	l.Remaining -= n
	l.Quantity += n
	return n
}

// MarshalJSON implements the json.Marshaler interface for Location.
// The derived status is written for readers of the snapshot file.
func (l Location) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("location", l.ID)
	w.Append("rating", l.Rating)
	w.Append("polarity", l.Polarity)
	w.Append("currentQty", l.Quantity)
	w.Append("remainingCapacity", l.Remaining)
	w.Append("status", l.Status())
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Location.
func (l *Location) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string   `json:"location"`
		Rating    Rating   `json:"rating"`
		Polarity  Polarity `json:"polarity"`
		Quantity  int      `json:"currentQty"`
		Remaining int      `json:"remainingCapacity"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*l = Location(temp)
	return nil
}

// FindLocation returns the index of the first location, in storage order,
// that has the given rating and some remaining capacity, or -1.
// Polarity is not part of the match.
func (s *Snapshot) FindLocation(rating Rating) int {
	for i, l := range s.Locations {
		if l.Rating.Equal(rating) && l.Remaining > 0 {
			return i
		}
	}
	return -1
}

// Location returns the location with that identifier.
func (s *Snapshot) Location(id string) (Location, bool) {
	for _, l := range s.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// nextLocationID reserves the next generated identifier ("A1", "A2", ...).
// Identifiers are never reused, even after a deletion.
func (s *Snapshot) nextLocationID() string {
	for {
		s.Sequence++
		id := "A" + strconv.Itoa(s.Sequence)
		if _, taken := s.Location(id); !taken {
			return id
		}
	}
}

// generatedSequence returns the highest n of the "A<n>" identifiers in s.
func (s *Snapshot) generatedSequence() int {
	seq := 0
	for _, l := range s.Locations {
		digits, ok := strings.CutPrefix(l.ID, "A")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil {
			seq = max(seq, n)
		}
	}
	return seq
}

// AddLocation registers an empty location created by an operator.
func AddLocation(s *Snapshot, id string, rating Rating, polarity Polarity) (*Snapshot, Location, error) {
	verr := &ValidationError{}
	id = strings.TrimSpace(id)
	if id == "" {
		verr.set("location", "Location is required")
	} else if _, exists := s.Location(id); exists {
		verr.set("location", "Location already exists")
	}
	if rating.IsZero() {
		verr.set("rating", "Rating is required")
	}
	if !polarity.IsValid() {
		verr.set("polarity", "Polarity is required")
	}
	if err := verr.orNil(); err != nil {
		return s, Location{}, err
	}

	next := s.Clone()
	loc := newLocation(id, rating, polarity, 0)
	next.Locations = append(next.Locations, loc)
	return next, loc, nil
}

// DeleteLocation removes a location. Open entries that refer to it are kept.
func DeleteLocation(s *Snapshot, id string) (*Snapshot, Location, error) {
	for i, l := range s.Locations {
		if l.ID == id {
			next := s.Clone()
			next.Locations = append(next.Locations[:i], next.Locations[i+1:]...)
			return next, l, nil
		}
	}
	return s, Location{}, fmt.Errorf("location %q: %w", id, ErrNotFound)
}
