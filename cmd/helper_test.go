package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/polestock"
	"github.com/google/subcommands"
)

// useTestStore points the global flags to a temporary store, with raw output
// captured in the returned buffer and a fixed date.
func useTestStore(t *testing.T) *bytes.Buffer {
	t.Helper()
	oldStore, oldRaw, oldStdout := *storeDir, *rawOutput, stdout
	t.Cleanup(func() { *storeDir, *rawOutput, stdout = oldStore, oldRaw, oldStdout })

	out := &bytes.Buffer{}
	*storeDir = filepath.Join(t.TempDir(), ".poles")
	*rawOutput = true
	stdout = out
	t.Setenv(EnvTestingNow, "2025-06-03 10:00:00")
	return out
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: cannot parse flags: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// mustRun runs c and fails the test unless it succeeds.
func mustRun(t *testing.T, c subcommands.Command, args ...string) {
	t.Helper()
	if status := run(t, c, args...); status != subcommands.ExitSuccess {
		t.Fatalf("%s %v: got status %v, want %v", c.Name(), args, status, subcommands.ExitSuccess)
	}
}

// stored loads the snapshot saved in the test store.
func stored(t *testing.T) *polestock.Snapshot {
	t.Helper()
	s, err := polestock.NewFileStore(*storeDir).Load()
	if err != nil {
		t.Fatalf("cannot load the test store: %v", err)
	}
	return s
}
