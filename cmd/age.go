package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type ageCmd struct {
	n int
}

func (*ageCmd) Name() string     { return "age" }
func (*ageCmd) Synopsis() string { return "run aging sweeps now" }
func (*ageCmd) Usage() string {
	return `pst age [-n <sweeps>]

  Runs aging sweeps: every open entry gets one more inactive day, and entries
  inactive for 15 days move to the aging poles.
`
}

func (c *ageCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 1, "Number of sweeps to run")
}

func (c *ageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n < 1 {
		fmt.Fprintln(os.Stderr, "Error: -n must be at least 1.")
		return subcommands.ExitUsageError
	}
	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}

	var migrated []polestock.ImbalanceEntry
	for range c.n {
		entries, err := tracker.Age()
		if err != nil {
			return failure(err)
		}
		migrated = append(migrated, entries...)
	}
	fmt.Fprintf(stdout, "%d sweeps, %d entries moved to aging\n", c.n, len(migrated))
	if len(migrated) > 0 {
		printMarkdown(renderer.AgingMarkdown(migrated))
	}
	return subcommands.ExitSuccess
}

type watchCmd struct {
	interval time.Duration
	duration time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "run aging sweeps periodically" }
func (*watchCmd) Usage() string {
	return `pst watch [-interval <duration>] [-for <duration>]

  Runs an aging sweep every interval until interrupted, or until the -for
  duration is over.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", polestock.DefaultSweepInterval, "Period of the aging sweep")
	f.DurationVar(&c.duration, "for", 0, "Stop after this duration, 0 runs until interrupted")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if c.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.duration)
		defer cancel()
	}

	monitor := polestock.NewMonitor(tracker, c.interval)
	monitor.OnSweep = func(migrated []polestock.ImbalanceEntry, err error) {
		if err == nil && len(migrated) > 0 {
			printMarkdown(renderer.AgingMarkdown(migrated))
		}
	}
	fmt.Fprintf(stdout, "Aging sweep every %v\n", monitor.Interval())
	monitor.Start(ctx)
	<-ctx.Done()
	monitor.Stop()
	return subcommands.ExitSuccess
}
