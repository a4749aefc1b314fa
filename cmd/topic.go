package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallets/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2/predict"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `wlt topic [<topic>...]

Show documentation for the given topics, "*" for all of them.
Without topic, the list of topics is shown.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// topics predicts topic names.
func topics() predict.Set {
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return predict.Set(append(all, "*"))
}
