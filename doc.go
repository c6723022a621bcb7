// Package polestock tracks the stock of electrical poles whose positions do
// not hold the same quantity. It allocates the surplus to storage locations,
// reconciles it when balance reports arrive, and ages unresolved surplus into
// a watch-list.
//
// The core functionalities include:
//   - Allocation: computing the imbalance of a pole group and storing it in a
//     location of the same rating, created on demand with a fixed capacity.
//   - Reconciliation: decrementing an open entry with balance reports, and
//     moving it to the balance ledger once nothing is outstanding.
//   - Aging: counting the sweeps an entry stays open, and moving it to the
//     aging bucket after AgingThreshold sweeps.
//   - Data Persistence: keeping the whole state as one human-readable JSON
//     document, saved by a single owner, the Tracker.
//
// Transitions (Allocate, Reconcile, Age, ...) never modify the Snapshot they
// receive. This package serves as the foundational logic for the `pst`
// command-line tool.
package polestock
