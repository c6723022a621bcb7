package polestock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/polestock/date"
)

// ReconcileRequest is a balance report against an open imbalance entry.
type ReconcileRequest struct {
	Polarity Polarity
	Rating   Rating
	Location string
	Qty      int // balanced quantity reported
}

// Reconciliation describes the outcome of a successful reconciliation.
type Reconciliation struct {
	Entry    ImbalanceEntry // the entry after the report was applied
	Closed   bool           // true if the entry left the open set
	Balanced BalancedEntry  // the appended balanced entry, when Closed
}

// ParseReconcileRequest builds a request from raw text inputs and reports every
// missing or malformed field at once.
func ParseReconcileRequest(polarity, rating, location, qty string) (ReconcileRequest, error) {
	var req ReconcileRequest
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
	} else if r, err := ParseRating(rating); err != nil {
		verr.set("rating", "Rating must be a number")
	} else {
		req.Rating = r
	}

	req.Location = strings.TrimSpace(location)
	if req.Location == "" {
		verr.set("location", "Location is required")
	}

	qty = strings.TrimSpace(qty)
	if qty == "" {
		verr.set("balancedQuantity", "Balanced Quantity is required")
	} else if n, err := strconv.Atoi(qty); err != nil || n <= 0 {
		verr.set("balancedQuantity", "Balanced Quantity must be a positive number")
	} else {
		req.Qty = n
	}

	if err := verr.orNil(); err != nil {
		return ReconcileRequest{}, err
	}
	return req, nil
}

// Validate checks the request fields, independently of any open entry.
func (r ReconcileRequest) Validate() error {
	verr := &ValidationError{}
	if !r.Polarity.IsValid() {
		verr.set("polarity", "Polarity is required")
	}
	if r.Rating.IsZero() {
		verr.set("rating", "Rating is required")
	}
	if r.Location == "" {
		verr.set("location", "Location is required")
	}
	if r.Qty <= 0 {
		verr.set("balancedQuantity", "Balanced Quantity must be a positive number")
	}
	return verr.orNil()
}

// Reconcile applies a balance report to the first open entry matching its
// polarity, rating and location.
//
// A report larger than the outstanding quantity fails with ErrExceeded and
// changes nothing. When the outstanding quantity reaches zero the entry moves
// to the balance ledger, dated on. Location counters are not changed.
func Reconcile(s *Snapshot, req ReconcileRequest, on date.Date) (*Snapshot, Reconciliation, error) {
	if err := req.Validate(); err != nil {
		return s, Reconciliation{}, err
	}

	i := -1
	for j, e := range s.Imbalanced {
		if e.matches(req.Polarity, req.Rating, req.Location) {
			i = j
			break
		}
	}
	if i < 0 {
		return s, Reconciliation{}, fmt.Errorf("no open %s %sA entry at %q: %w", req.Polarity, req.Rating, req.Location, ErrNotFound)
	}

	entry := s.Imbalanced[i]
	if req.Qty > entry.ImbalanceQty {
		return s, Reconciliation{}, fmt.Errorf("balanced quantity %d for %s %sA at %q: %w (%d)", req.Qty, req.Polarity, req.Rating, req.Location, ErrExceeded, entry.ImbalanceQty)
	}

	next := s.Clone()
	entry.ImbalanceQty -= req.Qty
	result := Reconciliation{Entry: entry}

	if entry.ImbalanceQty == 0 {
		next.Imbalanced = append(next.Imbalanced[:i], next.Imbalanced[i+1:]...)
		result.Closed = true
		result.Balanced = BalancedEntry{
			Polarity:    req.Polarity,
			Rating:      req.Rating,
			Location:    req.Location,
			BalancedQty: req.Qty,
			BalanceDate: on,
		}
		next.Balanced = append(next.Balanced, result.Balanced)
	} else {
		next.Imbalanced[i] = entry
	}
	return next, result, nil
}
