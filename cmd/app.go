// Package cmd implements the wlt command line application.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/wallets"
	"github.com/etnz/wallets/clipboard"
	"github.com/etnz/wallets/renderer"
	"github.com/google/subcommands"
)

// Commands are the wlt subcommands.
var Commands = []subcommands.Command{
	&listCmd{},
	&showCmd{},
	&copyCmd{},
	&browseCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, x := range Commands {
		c.Register(x, "")
	}
}

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	for _, x := range Commands {
		if x.Name() == name {
			return true
		}
	}
	return false
}

// markdown is printed at this width in the terminal.
const terminalWidth = 100

// replaced in tests.
var (
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
	newClipboard           = func() wallets.Clipboard { return clipboard.New() }
)

// loadHoldings returns the holdings of the holdings file, or the sample without one.
func loadHoldings() (wallets.Holdings, error) {
	if cfg.HoldingsFile == "" {
		return wallets.Sample(), nil
	}
	return wallets.DecodeHoldingsFile(cfg.HoldingsFile, cfg.HoldingsPath, cfg.Currency)
}

// printMarkdown prints md for the terminal, or as is if it cannot be rendered.
func printMarkdown(md string) {
	out, err := renderer.Terminal(md, cfg.Style, terminalWidth)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}

// format is the output format of a view.
type format struct {
	html, json bool
}

func (o *format) register(f *flag.FlagSet) {
	f.BoolVar(&o.html, "html", false, "print HTML instead of terminal text")
	f.BoolVar(&o.json, "json", false, "print the view as JSON instead of terminal text")
}

// print prints the markdown md of a view, or its model.
func (o *format) print(md string, model any) subcommands.ExitStatus {
	switch {
	case o.html && o.json:
		fmt.Fprintln(stderr, "Error: -html and -json are mutually exclusive")
		return subcommands.ExitUsageError
	case o.json:
		data, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
	case o.html:
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintf(stderr, "Error converting to HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, html)
	default:
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// printNotification prints notifications of the view, failures go to stderr.
func printNotification(n wallets.Notification) {
	if n.Severity == wallets.Destructive {
		fmt.Fprintln(stderr, "Error:", n.Message)
		return
	}
	fmt.Fprintln(stdout, n.Message)
}
