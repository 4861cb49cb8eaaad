// Package cmd implements the fin command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finance"
	"github.com/etnz/finance/internal/config"
	"github.com/etnz/finance/internal/logger"
	"github.com/google/subcommands"
)

// Commands are all the fin subcommands.
var Commands = []subcommands.Command{
	&consoleCmd{},
	&accountsCmd{},
	&showCmd{},
	&checkCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// env is the configuration read from the environment, it provides the flags defaults.
// envErr reports a .env file that exists but cannot be read.
var env, envErr = config.Load()

var accountsFile = flag.String("accounts-file", env.AccountsFile, "Path to the accounts file (JSON format)")
var currency = flag.String("currency", env.Currency, "ISO 4217 code of the currency used to format amounts")
var verbose = flag.Bool("v", false, "log debug messages to stderr")

// out is where commands print their result.
var out io.Writer = os.Stdout

// Context returns ctx carrying the logger configured by the global flags.
// It must be called after the flags are parsed.
func Context(ctx context.Context) context.Context {
	level := env.LogLevel
	if *verbose {
		level = "debug"
	}
	log := logger.New(level)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("cannot read the .env file")
	}
	return logger.WithContext(ctx, log)
}

// accountsPath returns the file flag of a command, or the global accounts file.
func accountsPath(file string) string {
	if file != "" {
		return file
	}
	return *accountsFile
}

// errNoAccountsFile is returned when a command needs an accounts file and none is configured.
var errNoAccountsFile = errors.New("no accounts file, use -f or -accounts-file")

// loadAccounts loads the accounts file into m.
func loadAccounts(ctx context.Context, m *finance.AccountManager, path string) error {
	log := logger.FromContext(ctx)
	if path == "" {
		return errNoAccountsFile
	}
	record, err := finance.LoadAccounts(path)
	if err != nil {
		return err
	}
	if err := m.GenerateAccounts(record); err != nil {
		return fmt.Errorf("cannot load accounts from %q: %w", path, err)
	}
	log.Debug().Str("path", path).Int("accounts", m.AccountCount()).Msg("accounts loaded")
	return nil
}

// decodeManager creates a manager holding the accounts of a file.
func decodeManager(ctx context.Context, path string) (*finance.AccountManager, error) {
	m := finance.NewAccountManager()
	if err := loadAccounts(ctx, m, path); err != nil {
		return nil, err
	}
	return m, nil
}

// isNotExist reports whether err is caused by a missing file.
func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

// printMarkdown renders markdown for the terminal, falling back to raw markdown.
func printMarkdown(md string) {
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, rendered)
}
