package polestock

// AgingThreshold is the number of sweeps after which an open entry moves to
// the aging bucket.
const AgingThreshold = 15

// Age runs one aging sweep.
//
// Every open entry gets one more inactive day. Entries reaching
// AgingThreshold are moved to the aging bucket in the same sweep and are
// returned. Entries already in the aging bucket are left untouched.
func Age(s *Snapshot) (*Snapshot, []ImbalanceEntry) {
	next := s.Clone()
	next.Imbalanced = make([]ImbalanceEntry, 0, len(s.Imbalanced))
	var migrated []ImbalanceEntry
	for _, e := range s.Imbalanced {
		e.DaysInactive++
		if e.Overdue() {
			migrated = append(migrated, e)
			continue
		}
		next.Imbalanced = append(next.Imbalanced, e)
	}
	next.Aging = append(next.Aging, migrated...)
	return next, migrated
}
