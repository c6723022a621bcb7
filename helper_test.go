package polestock

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignoreID ignores generated entry identifiers in cmp.Diff.
var ignoreID = cmpopts.IgnoreFields(ImbalanceEntry{}, "ID")

// alloc is a helper for tests to build an allocation request from consts.
func alloc(p Polarity, rating float64, counts ...int) AllocationRequest {
	return AllocationRequest{Polarity: p, Rating: R(rating), Counts: counts}
}

// mustAllocate allocates req into s and fails the test on error.
func mustAllocate(t *testing.T, s *Snapshot, req AllocationRequest) (*Snapshot, Allocation) {
	t.Helper()
	next, a, err := Allocate(s, req)
	if err != nil {
		t.Fatalf("Allocate(%v) unexpected error: %v", req, err)
	}
	return next, a
}

// checkCapacity verifies that every location of s is within bounds.
func checkCapacity(t *testing.T, s *Snapshot) {
	t.Helper()
	for _, l := range s.Locations {
		if l.Quantity+l.Remaining != Capacity || l.Quantity < 0 || l.Remaining < 0 {
			t.Errorf("location %s holds %d with %d remaining, want a total of %d", l.ID, l.Quantity, l.Remaining, Capacity)
		}
	}
}
