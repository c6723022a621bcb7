package cmd

import (
	"context"
	"flag"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	json bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the imbalanced, balanced and aging poles" }
func (*dashboardCmd) Usage() string {
	return `pst dashboard [-json]

  Displays the open imbalance entries, the balanced poles, the aging poles and
  the locations. Entries inactive for 15 days or more are in bold.

  With -json, prints the stored snapshot document instead.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the snapshot as JSON")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot()
	if err != nil {
		return failure(err)
	}
	if c.json {
		if err := polestock.EncodeSnapshot(stdout, s); err != nil {
			return failure(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.DashboardMarkdown(polestock.NewDashboard(s)))
	return subcommands.ExitSuccess
}
