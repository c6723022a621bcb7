// Package cmd implements the CLI application to manage the pole stock.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/polestock"
	"github.com/etnz/polestock/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&allocateCmd{}, "stock")
	c.Register(&reconcileCmd{}, "stock")
	c.Register(&deleteCmd{}, "stock")

	c.Register(&addLocationCmd{}, "locations")
	c.Register(&deleteLocationCmd{}, "locations")
	c.Register(&locationsCmd{}, "locations")

	c.Register(&ageCmd{}, "aging")
	c.Register(&watchCmd{}, "aging")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&balancedCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&clearCmd{}, "data")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store", ".poles", "Path to the folder holding the snapshot")
var rawOutput = flag.Bool("raw", false, "Print markdown reports without terminal rendering")

// stdout receives the command reports.
var stdout io.Writer = os.Stdout

// EnvTestingNow fixes the current date, for reproducible documentation examples.
const EnvTestingNow = "POLESTOCK_TESTING_NOW"

// clock returns the system clock, unless EnvTestingNow sets a date.
func clock() polestock.Clock {
	v := os.Getenv(EnvTestingNow)
	if v == "" {
		return polestock.SystemClock{}
	}
	if t, err := time.Parse(time.DateTime, v); err == nil {
		return polestock.FixedClock(t)
	}
	d, err := date.Parse(v)
	if err != nil {
		log.Printf("warning, invalid %s=%q, using the system clock: %v", EnvTestingNow, v, err)
		return polestock.SystemClock{}
	}
	return polestock.FixedClock(time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC))
}

// openTracker is the central function to open the snapshot in the store folder.
func openTracker() (*polestock.Tracker, error) {
	return polestock.NewTracker(polestock.NewFileStore(*storeDir), clock())
}

// loadSnapshot returns a copy of the stored snapshot, for read only commands.
func loadSnapshot() (*polestock.Snapshot, error) {
	tracker, err := openTracker()
	if err != nil {
		return nil, err
	}
	return tracker.Snapshot(), nil
}

// failure prints err and returns the matching exit status.
// Invalid inputs are usage errors, everything else is a failure.
func failure(err error) subcommands.ExitStatus {
	var verr *polestock.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Error: invalid input")
		for _, f := range verr.Fields {
			fmt.Fprintf(os.Stderr, "  -%s: %s\n", f.Field, f.Message)
		}
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("warning, cannot render markdown: %v", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}
