package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/finance/docs"
	"github.com/etnz/finance/internal/logger"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct {
	list bool
	raw  bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the fin documentation" }
func (*topicCmd) Usage() string {
	return `fin topic [-list] [-raw] [<topic>...]

  Prints the documentation topics, '*' for all of them.
  Without topic, it prints the documentation index.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the topics with their title")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *topicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.FromContext(ctx)
	if c.list {
		if err := listTopics(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}
	log.Debug().Strs("topics", topics).Msg("reading documentation")

	doc, err := docs.GetTopics(topics...)
	if errors.Is(err, fs.ErrNotExist) {
		all, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "%v\navailable topics: %s\n", err, strings.Join(all, ", "))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}

	if c.raw {
		fmt.Fprint(out, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// listTopics prints one line per topic: its name and its title.
func listTopics() error {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return err
	}
	width := 0
	for _, t := range topics {
		width = max(width, len(t))
	}
	for _, t := range topics {
		title, err := docs.Title(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-*s  %s\n", width, t, title)
	}
	return nil
}
