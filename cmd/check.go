package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	file string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate an accounts file" }
func (*checkCmd) Usage() string {
	return `fin check [-f <file>]

  Validates the accounts file and reports its accounts.
  The exit status is non zero if the file cannot be loaded.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the accounts file (defaults to -accounts-file)")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := accountsPath(c.file)
	m, err := decodeManager(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}

	names, _ := m.AccountNames()
	transactions := 0
	for _, name := range names {
		transactions += m.Account(name).TransactionCount()
	}
	fmt.Fprintf(out, "%s: %d account(s), %d transaction(s)\n", path, len(names), transactions)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %d transaction(s)\n", name, m.Account(name).TransactionCount())
	}
	return subcommands.ExitSuccess
}
