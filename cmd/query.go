package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/polestock"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the snapshot" }
func (*queryCmd) Usage() string {
	return `pst query <jsonpath>

  Evaluates a JSONPath expression on the snapshot document and prints the
  result as JSON. For instance:

    pst query '$.locations[*].location'
    pst query '$.imbalanced[?(@.daysInactive > 10)]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}
	s, err := loadSnapshot()
	if err != nil {
		return failure(err)
	}
	result, err := polestock.Query(s, f.Arg(0))
	if err != nil {
		return failure(err)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
