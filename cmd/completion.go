package cmd

import (
	"flag"
	"os"
	"slices"

	"github.com/etnz/polestock"
	"github.com/etnz/polestock/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs the shell completion of the commands registered in c, when the
// shell asks for it, and exits. Otherwise it does nothing.
//
// Install it in bash with `COMP_INSTALL=1 pst`.
func Complete(c *subcommands.Commander, name string) {
	completion(c).Complete(name)
}

// completion describes the commands of c, their flags and their arguments.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) {
		if f.Name == "store" {
			root.Flags[f.Name] = predict.Dirs("*")
			return
		}
		root.Flags[f.Name] = flagPredictor(f)
	})
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{
			Flags: map[string]complete.Predictor{},
			Args:  argsPredictor(cmd.Name()),
		}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = flagPredictor(f) })
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "polarity":
		var labels predict.Set
		for _, p := range polestock.Polarities {
			labels = append(labels, p.String())
		}
		return labels
	case "rating":
		return complete.PredictFunc(predictRatings)
	case "location":
		return complete.PredictFunc(predictLocations)
	case "p":
		return predict.Set{"day", "week", "month", "year"}
	case "interval", "for":
		return predict.Set{"1s", "5s", "1m", "1h"}
	}
	return predict.Something
}

func argsPredictor(command string) complete.Predictor {
	switch command {
	case "delete":
		return complete.PredictFunc(predictEntries)
	case "delete-location":
		return complete.PredictFunc(predictLocations)
	case "topic":
		return complete.PredictFunc(predictTopics)
	case "query":
		return predict.Set{"$.imbalanced", "$.balanced", "$.aging", "$.locations"}
	}
	return predict.Nothing
}

// completionSnapshot reads the stored snapshot without logging, an unreadable
// snapshot completes as an empty one.
func completionSnapshot() *polestock.Snapshot {
	f, err := os.Open(polestock.NewFileStore(*storeDir).Path())
	if err != nil {
		return polestock.Empty()
	}
	defer f.Close()
	s, err := polestock.DecodeSnapshot(f)
	if err != nil {
		return polestock.Empty()
	}
	return s
}

// predictRatings lists the ratings of open entries first, then the ratings of locations.
func predictRatings(prefix string) []string {
	s := completionSnapshot()
	var ratings []string
	for r := range s.OpenRatings() {
		ratings = append(ratings, r.String())
	}
	for _, l := range s.Locations {
		if r := l.Rating.String(); !slices.Contains(ratings, r) {
			ratings = append(ratings, r)
		}
	}
	return ratings
}

// predictLocations lists the locations of open entries first, then the registered ones.
func predictLocations(prefix string) []string {
	s := completionSnapshot()
	locations := slices.Collect(s.OpenLocations())
	for _, l := range s.Locations {
		if !slices.Contains(locations, l.ID) {
			locations = append(locations, l.ID)
		}
	}
	return locations
}

func predictEntries(prefix string) []string {
	s := completionSnapshot()
	ids := make([]string, 0, len(s.Imbalanced))
	for _, e := range s.Imbalanced {
		ids = append(ids, e.ID)
	}
	return ids
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "*")
}
