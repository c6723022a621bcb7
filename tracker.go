package polestock

import (
	"fmt"
	"log"
	"sync"
)

// Tracker is the single owner of the snapshot.
//
// Every mutation runs under one lock: the current snapshot is passed to a
// transition, the result is saved and only then becomes current. If the save
// fails the previous snapshot stays current.
type Tracker struct {
	mu    sync.Mutex
	store Store
	clock Clock
	snap  *Snapshot
}

// NewTracker loads the snapshot from store.
// A nil clock means the system clock.
func NewTracker(store Store, clock Clock) (*Tracker, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshot: %w", err)
	}
	return &Tracker{store: store, clock: clock, snap: snap}, nil
}

// Snapshot returns a copy of the current snapshot.
func (t *Tracker) Snapshot() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.Clone()
}

// commit saves next and makes it current. Must be called with t.mu held.
func (t *Tracker) commit(next *Snapshot) error {
	if err := t.store.Save(next); err != nil {
		return fmt.Errorf("cannot save snapshot: %w", err)
	}
	t.snap = next
	return nil
}

// Allocate records a pole group imbalance. See Allocate.
func (t *Tracker) Allocate(req AllocationRequest) (Allocation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, a, err := Allocate(t.snap, req)
	if err != nil {
		return Allocation{}, err
	}
	if err := t.commit(next); err != nil {
		return Allocation{}, err
	}
	if a.Entry.ImbalanceQty == 0 {
		log.Printf("warning, %s %sA group is balanced, empty entry %s recorded at %s", a.Entry.Polarity, a.Entry.Rating, a.Entry.ID, a.Entry.Location)
	}
	if a.Truncated > 0 {
		log.Printf("warning, location %s is full, %d units of %s %sA were not stored", a.Location.ID, a.Truncated, a.Entry.Polarity, a.Entry.Rating)
	}
	if a.Created {
		log.Printf("location %s created for %sA", a.Location.ID, a.Location.Rating)
	}
	return a, nil
}

// Reconcile applies a balance report, dated today. See Reconcile.
func (t *Tracker) Reconcile(req ReconcileRequest) (Reconciliation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, r, err := Reconcile(t.snap, req, today(t.clock))
	if err != nil {
		return Reconciliation{}, err
	}
	if err := t.commit(next); err != nil {
		return Reconciliation{}, err
	}
	if r.Closed {
		log.Printf("%s %sA at %s is balanced", r.Balanced.Polarity, r.Balanced.Rating, r.Balanced.Location)
	}
	return r, nil
}

// Age runs one aging sweep and returns the entries moved to the aging bucket.
func (t *Tracker) Age() ([]ImbalanceEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, migrated := Age(t.snap)
	if err := t.commit(next); err != nil {
		return nil, err
	}
	for _, e := range migrated {
		log.Printf("%s %sA at %s inactive for %d days, moved to aging", e.Polarity, e.Rating, e.Location, e.DaysInactive)
	}
	return migrated, nil
}

// AddLocation registers an empty location.
func (t *Tracker) AddLocation(id string, rating Rating, polarity Polarity) (Location, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, loc, err := AddLocation(t.snap, id, rating, polarity)
	if err != nil {
		return Location{}, err
	}
	if err := t.commit(next); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// DeleteLocation removes a location.
func (t *Tracker) DeleteLocation(id string) (Location, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, loc, err := DeleteLocation(t.snap, id)
	if err != nil {
		return Location{}, err
	}
	if err := t.commit(next); err != nil {
		return Location{}, err
	}
	for l := range next.OpenLocations() {
		if l == id {
			log.Printf("warning, location %s deleted while open entries still refer to it", id)
			break
		}
	}
	return loc, nil
}

// DeleteImbalance removes an open entry.
func (t *Tracker) DeleteImbalance(id string) (ImbalanceEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, e, err := DeleteImbalance(t.snap, id)
	if err != nil {
		return ImbalanceEntry{}, err
	}
	if err := t.commit(next); err != nil {
		return ImbalanceEntry{}, err
	}
	return e, nil
}

// Clear replaces the whole state with an empty snapshot.
func (t *Tracker) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.commit(Empty()); err != nil {
		return err
	}
	log.Println("all data cleared")
	return nil
}
