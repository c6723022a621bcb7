// Command pst manages the pole stock: imbalance allocation, reconciliation
// and aging. Run `pst topic` for the documentation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/polestock/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Complete(commander, "pst")

	flag.Parse()

	// Unknown subcommands are looked up as pst-<subcommand> extensions.
	if name := flag.Arg(0); name != "" && !cmd.Registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
