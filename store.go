package polestock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// SnapshotName is the fixed name the snapshot is stored under.
const SnapshotName = "polesData.json"

// Store persists the snapshot.
type Store interface {
	// Load returns the stored snapshot, or an empty one if nothing is stored yet.
	Load() (*Snapshot, error)
	// Save replaces the stored snapshot.
	Save(*Snapshot) error
}

// FileStore keeps the snapshot as a JSON file in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store for the snapshot file in dir.
func NewFileStore(dir string) *FileStore { return &FileStore{Dir: dir} }

// Path returns the path of the snapshot file.
func (s *FileStore) Path() string { return filepath.Join(s.Dir, SnapshotName) }

func (s *FileStore) Load() (*Snapshot, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, snapshot %q does not exist, starting with an empty one", s.Path())
		return Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", s.Path(), err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot %q: %w", s.Path(), err)
	}
	return snap, nil
}

// Save writes the snapshot to a temporary file and renames it over the
// previous one.
func (s *FileStore) Save(snap *Snapshot) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create snapshot folder %q: %w", s.Dir, err)
	}
	tmp, err := os.CreateTemp(s.Dir, "."+SnapshotName+"-*")
	if err != nil {
		return fmt.Errorf("cannot create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeSnapshot(tmp, snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("cannot replace snapshot %q: %w", s.Path(), err)
	}
	return nil
}

// Clear deletes the snapshot file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete snapshot %q: %w", s.Path(), err)
	}
	return nil
}

// MemoryStore keeps the encoded snapshot in memory.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return Empty(), nil
	}
	return DecodeSnapshot(bytes.NewReader(m.data))
}

func (m *MemoryStore) Save(s *Snapshot) error {
	var b bytes.Buffer
	if err := EncodeSnapshot(&b, s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = b.Bytes()
	m.saves++
	return nil
}

// Saves returns how many times the snapshot was saved.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
