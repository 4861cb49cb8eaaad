package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/console"
	"github.com/etnz/finance/internal/logger"
	"github.com/google/subcommands"
)

// consoleCmd holds the flags for the 'console' subcommand.
type consoleCmd struct {
	file string
}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "start an interactive session on the accounts" }
func (*consoleCmd) Usage() string {
	return `fin console [-f <file>]

  Starts an interactive session to manage accounts and their transactions.
  Without accounts file, it first asks whether to load one.
  Type "help" in the session to list all actions.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the accounts file to load (defaults to -accounts-file)")
}

func (c *consoleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.FromContext(ctx)
	m := finance.NewAccountManager()
	session := console.New(out, os.Stdin, m)

	path := accountsPath(c.file)
	switch err := loadAccounts(ctx, m, path); {
	case err == errNoAccountsFile:
		if err := session.Setup(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
	case isNotExist(err) && c.file == "":
		log.Warn().Str("path", path).Msg("accounts file does not exist, starting without accounts")
		fallthrough
	case err == nil:
		if err := session.CreateAccountPrompt(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
