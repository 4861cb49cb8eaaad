package docs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/finance"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// jsonAccounts is the info string of code blocks holding an accounts file.
const jsonAccounts = "json accounts"

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in docs/readme.md can be successfully loaded by the fin topic <topic_name> command.
	// 2. Every .md file in the docs directory (excluding readme.md itself) is present in the list of topics extracted from docs/readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	// Check 1: Every topic listed in docs/readme.md can be successfully loaded.
	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	// Check 2: Every .md file is listed in docs/readme.md.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestTitle(t *testing.T) {
	for topic, want := range map[string]string{
		"actions":     "Actions",
		"file-format": "Accounts file format",
		Readme:        "fin documentation",
	} {
		got, err := Title(topic)
		if err != nil {
			t.Fatalf("Title(%q) error = %v", topic, err)
		}
		if got != want {
			t.Errorf("Title(%q) = %q, want %q", topic, got, want)
		}
	}
	if _, err := Title("missing"); err == nil {
		t.Error("Title(missing) succeeded, want an error")
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	content, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	for _, topic := range all {
		want, _ := GetTopic(topic)
		if !strings.Contains(content, want) {
			t.Errorf("GetTopic(*) does not contain topic %q", topic)
		}
	}
	if _, err := GetTopic("missing"); err == nil {
		t.Errorf("GetTopic(missing) succeeded, want an error")
	}
}

// TestActions checks that every action is documented.
func TestActions(t *testing.T) {
	content, err := GetTopic("actions")
	if err != nil {
		t.Fatal(err)
	}
	for _, info := range slices.Concat(finance.NoArgumentActions(), finance.OneArgumentActions()) {
		if !strings.Contains(content, "`"+string(info.Action)+"`") {
			t.Errorf("action %q is not documented in actions.md", info.Action)
		}
	}
}

// TestAccountsBlocks checks that every accounts file sample in the
// documentation can be loaded.
func TestAccountsBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, file := range files {
		for _, block := range parseMarkdown(t, file) {
			count++
			record, err := finance.DecodeRecord(strings.NewReader(block.Content))
			if err != nil {
				t.Errorf("%s:%d: invalid accounts file: %v", block.File, block.Line, err)
				continue
			}
			if err := finance.NewAccountManager().GenerateAccounts(record); err != nil {
				t.Errorf("%s:%d: cannot load accounts: %v", block.File, block.Line, err)
			}
		}
	}
	if count == 0 {
		t.Errorf("no %q block found in the documentation", jsonAccounts)
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// parseMarkdown parses a markdown file and returns its accounts blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		if lang != jsonAccounts {
			return ast.WalkContinue, nil
		}

		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.WriteString(string(line.Value(content)))
		}
		blocks = append(blocks, &Block{
			Type:    lang,
			Content: blockContent.String(),
			File:    file,
			Line:    lineNumber(content, fcb.Info.Segment.Start),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the lineNumber for a given offset AST offset.
// the markdown parser we use does not support that feature so we
// have to implement it.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
