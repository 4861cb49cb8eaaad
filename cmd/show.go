package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	file    string
	account string
	sort    string
	period  string
	date    string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the transactions of an account" }
func (*showCmd) Usage() string {
	return `fin show [-f <file>] [-a <account>] [-sort <method>] [-period <period> [-d <date>]]

  Displays the transactions of an account, numbered as in the console.
  The account defaults to the active account, that is the only account of the file.
  Sorting methods are chronological, by-cost and by-category.
  With -period, only the transactions of the day, week, month, quarter or year
  containing the date are displayed.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the accounts file (defaults to -accounts-file)")
	f.StringVar(&c.account, "a", "", "Name of the account to display")
	f.StringVar(&c.sort, "sort", "", "Sort transactions: chronological, by-cost or by-category")
	f.StringVar(&c.period, "period", "", "Restrict to a period: day, week, month, quarter or year")
	f.StringVar(&c.date, "d", "today", "Date within the period. See the console topic for supported date formats.")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var opts renderer.AccountOptions
	if c.sort != "" {
		method, err := finance.ParseSortMethod(c.sort)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -sort: %v\n", err)
			return subcommands.ExitUsageError
		}
		opts.Method = method
	}
	if c.period != "" {
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -period: %v\n", err)
			return subcommands.ExitUsageError
		}
		on, err := date.ParseInput(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		r := date.NewRange(on, period)
		opts.Range = &r
	}

	m, err := decodeManager(ctx, accountsPath(c.file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	a := m.ActiveAccount()
	if c.account != "" {
		a = m.Account(c.account)
		if a == nil {
			fmt.Fprintf(os.Stderr, "Error: the account %q does not exist\n", c.account)
			return subcommands.ExitFailure
		}
	}
	if a == nil {
		fmt.Fprintln(os.Stderr, "Error: there is no active account, use -a to choose one")
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.RenderAccount(renderer.NewAccount(a, *currency, opts)))
	return subcommands.ExitSuccess
}
