package cmd

import (
	"context"
	"flag"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type reconcileCmd struct {
	polarity string
	rating   string
	location string
	qty      string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "report a balanced quantity against an open imbalance" }
func (*reconcileCmd) Usage() string {
	return `pst reconcile -polarity <polarity> -rating <amps> -location <id> -qty <n>

  Decrements the first open imbalance entry with the same polarity, rating and
  location. The report cannot exceed the outstanding quantity. Once nothing is
  outstanding the entry is moved to the balanced poles, dated today.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.polarity, "polarity", "", "Polarity of the open entry (required)")
	f.StringVar(&c.rating, "rating", "", "Rating of the open entry (required)")
	f.StringVar(&c.location, "location", "", "Location of the open entry (required)")
	f.StringVar(&c.qty, "qty", "", "Balanced quantity, a positive number (required)")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req, err := polestock.ParseReconcileRequest(c.polarity, c.rating, c.location, c.qty)
	if err != nil {
		return failure(err)
	}

	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}
	r, err := tracker.Reconcile(req)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.ReconciliationMarkdown(r))
	return subcommands.ExitSuccess
}
