package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete open imbalance entries" }
func (*deleteCmd) Usage() string {
	return `pst delete <entry-id>...

  Deletes open imbalance entries by identifier. Identifiers are listed by
  'pst dashboard'. The stock of their location is not changed.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one entry identifier is required.")
		return subcommands.ExitUsageError
	}
	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}

	var errs error
	for _, id := range f.Args() {
		e, err := tracker.DeleteImbalance(id)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "Deleted %s %sA entry %s at %s\n", e.Polarity, e.Rating, e.ID, e.Location)
	}
	if errs != nil {
		return failure(errs)
	}
	return subcommands.ExitSuccess
}
