package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/renderer"
	"github.com/google/subcommands"
)

type addLocationCmd struct {
	location string
	rating   string
	polarity string
}

func (*addLocationCmd) Name() string     { return "add-location" }
func (*addLocationCmd) Synopsis() string { return "register an empty storage location" }
func (*addLocationCmd) Usage() string {
	return `pst add-location -location <id> -rating <amps> -polarity <polarity>

  Registers an empty location with a capacity of 25. Allocations of the same
  rating will use it as any generated location.
`
}

func (c *addLocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.location, "location", "", "Unique location identifier (required)")
	f.StringVar(&c.rating, "rating", "", "Rating stored in the location, in amps (required)")
	f.StringVar(&c.polarity, "polarity", "", "Polarity of the location (required)")
}

func (c *addLocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rating polestock.Rating
	var polarity polestock.Polarity
	var errs error
	if c.rating != "" {
		r, err := polestock.ParseRating(c.rating)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid rating %q: %w", c.rating, err))
		}
		rating = r
	}
	if c.polarity != "" {
		p, err := polestock.ParsePolarity(c.polarity)
		if err != nil {
			errs = errors.Join(errs, err)
		}
		polarity = p
	}
	if errs != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errs)
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}
	loc, err := tracker.AddLocation(c.location, rating, polarity)
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Location %s added for %s %sA\n", loc.ID, loc.Polarity, loc.Rating)
	return subcommands.ExitSuccess
}

type deleteLocationCmd struct{}

func (*deleteLocationCmd) Name() string     { return "delete-location" }
func (*deleteLocationCmd) Synopsis() string { return "remove a storage location" }
func (*deleteLocationCmd) Usage() string {
	return `pst delete-location <id>

  Removes a location from the registry. Open entries stored there are kept.
  Generated identifiers are never reused.
`
}

func (c *deleteLocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteLocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one location identifier is required.")
		return subcommands.ExitUsageError
	}
	tracker, err := openTracker()
	if err != nil {
		return failure(err)
	}
	loc, err := tracker.DeleteLocation(f.Arg(0))
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Location %s deleted\n", loc.ID)
	return subcommands.ExitSuccess
}

type locationsCmd struct{}

func (*locationsCmd) Name() string     { return "locations" }
func (*locationsCmd) Synopsis() string { return "display the storage locations" }
func (*locationsCmd) Usage() string {
	return `pst locations

  Displays every location with its stock, remaining capacity and status.
`
}

func (c *locationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *locationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot()
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.LocationsMarkdown(s.Locations))
	return subcommands.ExitSuccess
}
