package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all entries and locations" }
func (*clearCmd) Usage() string {
	return `pst clear -force

  Replaces the snapshot with an empty one: open, balanced and aging entries
  and all locations are deleted. This cannot be undone.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm that all data must be deleted")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: clear deletes all data, use -force to confirm.")
		return subcommands.ExitUsageError
	}
	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}
	if err := tracker.Clear(); err != nil {
		return failure(err)
	}
	fmt.Fprintln(stdout, "All data cleared")
	return subcommands.ExitSuccess
}
