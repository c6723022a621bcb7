package polestock

import (
	"fmt"
	"strconv"
	"strings"
)

// AllocationRequest holds the per-position counts of one pole group.
type AllocationRequest struct {
	Polarity Polarity
	Rating   Rating
	// Counts holds one quantity per pole position, position 1 first.
	Counts []int
}

// Allocation describes the outcome of a successful allocation.
type Allocation struct {
	Entry    ImbalanceEntry // the appended entry
	Location Location       // the created or updated location
	Created  bool           // true if Location was created by this allocation
	// Truncated is the part of the imbalance that did not fit in the
	// reused location and was dropped.
	Truncated int
}

// poleField names the input field of a pole position, starting at 1.
func poleField(position int) string { return fmt.Sprintf("pole%d", position) }

// ComputeImbalance returns the quantity that can be leveled across all
// positions (the scarcest count) and the surplus above it.
//
// For n counts, imbalance + balanced*n == sum(counts).
func ComputeImbalance(counts []int) (balanced, imbalance int) {
	if len(counts) == 0 {
		return 0, 0
	}
	balanced = counts[0]
	sum := 0
	for _, c := range counts {
		balanced = min(balanced, c)
		sum += c
	}
	return balanced, sum - balanced*len(counts)
}

// ParseAllocationRequest builds a request from raw text inputs, one count per
// position. Every missing, malformed or out of range field is reported at once.
func ParseAllocationRequest(polarity, rating string, counts []string) (AllocationRequest, error) {
	var req AllocationRequest
	verr := &ValidationError{}

	if polarity == "" {
		verr.set("polarity", "Polarity is required")
	} else if p, err := ParsePolarity(polarity); err != nil {
		verr.set("polarity", "Polarity must be one of 2-Pole, 3-Pole, 4-Pole")
	} else {
		req.Polarity = p
	}

	if rating == "" {
		verr.set("rating", "Rating is required")
	} else if r, err := ParseRating(rating); err != nil || !r.InRange() {
		verr.set("rating", "Rating must be between %s and %s", MinRating, MaxRating)
	} else {
		req.Rating = r
	}

	for i, c := range counts {
		c = strings.TrimSpace(c)
		if c == "" {
			verr.set(poleField(i+1), "Quantity for Pole %d is required", i+1)
			continue
		}
		n, err := strconv.Atoi(c)
		if err != nil {
			verr.set(poleField(i+1), "Quantity for Pole %d must be a whole number", i+1)
			continue
		}
		if n < 0 {
			verr.set(poleField(i+1), "Quantity for Pole %d must not be negative", i+1)
			continue
		}
		req.Counts = append(req.Counts, n)
	}
	if req.Polarity.IsValid() {
		n := req.Polarity.Positions()
		for i := len(counts); i < n; i++ {
			verr.set(poleField(i+1), "Quantity for Pole %d is required", i+1)
		}
		if len(counts) > n {
			verr.set("counts", "%s takes %d quantities, got %d", req.Polarity, n, len(counts))
		}
	}

	if err := verr.orNil(); err != nil {
		return AllocationRequest{}, err
	}
	return req, nil
}

// Validate checks the request and reports every invalid field.
func (r AllocationRequest) Validate() error {
	verr := &ValidationError{}
	if r.Polarity == 0 {
		verr.set("polarity", "Polarity is required")
	} else if !r.Polarity.IsValid() {
		verr.set("polarity", "Polarity must be one of 2-Pole, 3-Pole, 4-Pole")
	}

	if r.Rating.IsZero() {
		verr.set("rating", "Rating is required")
	} else if !r.Rating.InRange() {
		verr.set("rating", "Rating must be between %s and %s", MinRating, MaxRating)
	}

	if r.Polarity.IsValid() {
		n := r.Polarity.Positions()
		for i := 0; i < n; i++ {
			switch {
			case i >= len(r.Counts):
				verr.set(poleField(i+1), "Quantity for Pole %d is required", i+1)
			case r.Counts[i] < 0:
				verr.set(poleField(i+1), "Quantity for Pole %d must not be negative", i+1)
			}
		}
		if len(r.Counts) > n {
			verr.set("counts", "%s takes %d quantities, got %d", r.Polarity, n, len(r.Counts))
		}
	}
	return verr.orNil()
}

// Allocate records the imbalance of a pole group and stores it.
//
// The first location with the same rating and some room is reused; the entry
// then records only what fitted in it. Otherwise a new location is created
// and the entry records the full imbalance.
func Allocate(s *Snapshot, req AllocationRequest) (*Snapshot, Allocation, error) {
	if err := req.Validate(); err != nil {
		return s, Allocation{}, err
	}

	balanced, imbalance := ComputeImbalance(req.Counts)
	next := s.Clone()
	entry := ImbalanceEntry{
		ID:           newID(),
		Polarity:     req.Polarity,
		Rating:       req.Rating,
		ImbalanceQty: imbalance,
		BalancedQty:  balanced,
	}
	var result Allocation

	if i := next.FindLocation(req.Rating); i >= 0 {
		loc := &next.Locations[i]
		stored := loc.consume(imbalance)
		entry.Location = loc.ID
		entry.ImbalanceQty = stored
		result.Location = *loc
		result.Truncated = imbalance - stored
	} else {
		loc := newLocation(next.nextLocationID(), req.Rating, req.Polarity, imbalance)
		next.Locations = append(next.Locations, loc)
		entry.Location = loc.ID
		result.Location = loc
		result.Created = true
	}

	next.Imbalanced = append(next.Imbalanced, entry)
	result.Entry = entry
	return next, result, nil
}
