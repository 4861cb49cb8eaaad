// Command fin keeps track of personal expenses in accounts.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance"
	"github.com/etnz/finance/cmd"
	"github.com/etnz/finance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Exits when called by the shell to complete a command line.
	completion(commander).Complete(name)

	flag.Parse()
	ctx := cmd.Context(context.Background())
	os.Exit(int(commander.Execute(ctx)))
}

// completion describes the fin command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	files := predict.Files("*.json")

	var methods predict.Set
	for _, m := range finance.SortMethods() {
		methods = append(methods, m.String())
	}
	topics, _ := docs.GetAllTopics()

	subs := map[string]*complete.Command{
		"console":  {Flags: map[string]complete.Predictor{"f": files}},
		"accounts": {Flags: map[string]complete.Predictor{"f": files}},
		"check":    {Flags: map[string]complete.Predictor{"f": files}},
		"show": {Flags: map[string]complete.Predictor{
			"f":      files,
			"a":      predict.Something,
			"sort":   methods,
			"period": predict.Set{"day", "week", "month", "quarter", "year"},
			"d":      predict.Something,
		}},
		"topic": {
			Flags: map[string]complete.Predictor{"list": predict.Nothing, "raw": predict.Nothing},
			Args:  predict.Set(append(topics, "*")),
		},
	}
	// help takes a command name.
	var names predict.Set
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
		if _, ok := subs[c.Name()]; !ok {
			subs[c.Name()] = &complete.Command{}
		}
	})
	subs["help"].Args = names

	return &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"accounts-file": files,
			"currency":      predict.Something,
			"v":             predict.Nothing,
		},
	}
}
