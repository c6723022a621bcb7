package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/date"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type balancedCmd struct {
	date   string
	period string
}

func (*balancedCmd) Name() string     { return "balanced" }
func (*balancedCmd) Synopsis() string { return "display the poles balanced over a period" }
func (*balancedCmd) Usage() string {
	return `pst balanced [-d <date>] [-p day|week|month|year]

  Displays the imbalance entries closed during the period that contains the
  date.
`
}

func (c *balancedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any date within the period, defaults to today")
	f.StringVar(&c.period, "p", "month", "Period: day, week, month or year")
}

func (c *balancedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Of(clock().Now())
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		on = d
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadSnapshot()
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.BalanceReportMarkdown(polestock.NewBalanceReport(s, date.NewRange(on, period))))
	return subcommands.ExitSuccess
}
