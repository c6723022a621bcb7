package polestock

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/polestock/date"
	"github.com/google/go-cmp/cmp"
)

// sample returns a snapshot with content in every collection.
func sample(t *testing.T) *Snapshot {
	t.Helper()
	s, _ := mustAllocate(t, Empty(), alloc(ThreePole, 20, 10, 7, 9))
	s, _ = mustAllocate(t, s, alloc(TwoPole, 32, 4, 1))
	s, _, err := Reconcile(s, ReconcileRequest{Polarity: TwoPole, Rating: R(32), Location: "A2", Qty: 3}, date.New(2025, time.May, 2))
	if err != nil {
		t.Fatal(err)
	}
	s.Imbalanced[0].DaysInactive = AgingThreshold - 1
	s, _ = Age(s)
	s, _ = mustAllocate(t, s, alloc(FourPole, 20, 2, 2, 3, 2))
	return s
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "poles")
	store := NewFileStore(dir)

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load() of a missing snapshot: unexpected error: %v", err)
	}
	if diff := cmp.Diff(Empty(), s); diff != "" {
		t.Errorf("Load() of a missing snapshot mismatch (-want +got):\n%s", diff)
	}

	want := sample(t)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != SnapshotName {
		t.Errorf("snapshot folder holds %v, want only %s", entries, SnapshotName)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() unexpected error: %v", err)
	}
	if _, err := os.Stat(store.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("snapshot file still exists after Clear(): %v", err)
	}
}

func TestFileStoreCorrupted(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SnapshotName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(dir).Load(); err == nil {
		t.Error("Load() of a corrupted snapshot succeeded, want an error")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	want := sample(t)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	// later changes to the saved snapshot are not stored.
	want.Locations[0].Quantity = 0

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got.Locations[0].Quantity != 6 {
		t.Errorf("stored A1 quantity = %d, want 6", got.Locations[0].Quantity)
	}
	if store.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", store.Saves())
	}
}

func TestEncodeSnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, Empty()); err != nil {
		t.Fatalf("EncodeSnapshot() unexpected error: %v", err)
	}
	want := `{
  "imbalanced": [],
  "balanced": [],
  "aging": [],
  "locations": []
}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeSnapshot() = %s, want %s", got, want)
	}
}

func TestDecodeSnapshotNormalizes(t *testing.T) {
	// documents written without identifiers nor sequence are still read.
	doc := `{
  "imbalanced": [{"polarity":"2-Pole","rating":20,"imbalanceQty":4,"balancedQty":1,"location":"A3","daysInactive":2}],
  "locations": [
    {"location":"A3","rating":20,"polarity":"2-Pole","currentQty":4,"remainingCapacity":21,"status":"Active"},
    {"location":"Shelf","rating":32,"polarity":"2-Pole","currentQty":0,"remainingCapacity":25,"status":"Balanced"}
  ]
}`
	s, err := DecodeSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSnapshot() unexpected error: %v", err)
	}
	if s.Balanced == nil || s.Aging == nil {
		t.Error("DecodeSnapshot() left missing collections nil")
	}
	if s.Imbalanced[0].ID == "" {
		t.Error("DecodeSnapshot() did not assign an identifier")
	}
	if s.Sequence != 3 {
		t.Errorf("Sequence = %d, want 3", s.Sequence)
	}
	if !s.Imbalanced[0].Rating.Equal(R(20)) || s.Imbalanced[0].Polarity != TwoPole {
		t.Errorf("decoded entry = %+v", s.Imbalanced[0])
	}
}
