package docs

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// listedTopics returns the topics listed in readme.md as "* <topic>: description".
func listedTopics(t *testing.T) []string {
	t.Helper()
	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}
	re := regexp.MustCompile(`(?m)^\*\s+([^:]+):`)
	var topics []string
	for _, m := range re.FindAllStringSubmatch(string(content), -1) {
		topics = append(topics, strings.TrimSpace(m[1]))
	}
	return topics
}

func TestTopics(t *testing.T) {
	listed := listedTopics(t)
	if len(listed) == 0 {
		t.Fatal("no topic listed in readme.md")
	}
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get listed topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(doc, content) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) succeeded")
	}
}

// TestHeadings checks that every topic starts with a single level 1 heading.
func TestHeadings(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var levels []int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering {
					levels = append(levels, h.Level)
				}
				return ast.WalkContinue, nil
			})
			if len(levels) == 0 || levels[0] != 1 {
				t.Fatalf("%s does not start with a level 1 heading: %v", file, levels)
			}
			for _, l := range levels[1:] {
				if l == 1 {
					t.Errorf("%s has more than one level 1 heading", file)
				}
			}
		})
	}
}
