package cmd

import (
	"context"
	"flag"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

// summaryCmd displays the open imbalance per pole group.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the open imbalance per polarity and rating" }
func (*summaryCmd) Usage() string {
	return `pst summary

  Displays the open imbalance aggregated per polarity and rating.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot()
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.SummaryMarkdown(polestock.NewSummary(s)))
	return subcommands.ExitSuccess
}
