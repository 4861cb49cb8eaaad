package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct {
	file string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts with their totals" }
func (*accountsCmd) Usage() string {
	return `fin accounts [-f <file>]

  Lists the accounts of the accounts file, with their number of transactions and total.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the accounts file (defaults to -accounts-file)")
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := decodeManager(ctx, accountsPath(c.file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderAccounts(renderer.NewAccounts(m, *currency)))
	return subcommands.ExitSuccess
}
