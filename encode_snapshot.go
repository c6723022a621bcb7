package polestock

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeSnapshot writes s as an indented JSON document.
// Collections are always written, even when empty.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	out := s.Clone()
	out.normalize()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
// Missing collections decode as empty ones.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	s := new(Snapshot)
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	s.normalize()
	return s, nil
}
