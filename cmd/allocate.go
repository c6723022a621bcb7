package cmd

import (
	"context"
	"flag"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type allocateCmd struct {
	polarity string
	rating   string
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "record the imbalance of a pole group" }
func (*allocateCmd) Usage() string {
	return `pst allocate -polarity <2-Pole|3-Pole|4-Pole> -rating <amps> <qty1> <qty2> [<qty3> <qty4>]

  Computes the imbalance of a pole group from the quantity of each pole
  position, one quantity per position, and stores it in a location.

  The first location with the same rating and some room is reused; only what
  fits in it is recorded. Otherwise a new location is created.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.polarity, "polarity", "", "Pole polarity: 2-Pole, 3-Pole or 4-Pole (required)")
	f.StringVar(&c.rating, "rating", "", "Pole rating in amps, between 0.5 and 80 (required)")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req, err := polestock.ParseAllocationRequest(c.polarity, c.rating, f.Args())
	if err != nil {
		return failure(err)
	}

	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}
	a, err := tracker.Allocate(req)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.AllocationMarkdown(a))
	return subcommands.ExitSuccess
}
