package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallets"
	"github.com/etnz/wallets/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	format
	qr bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the details of one wallet" }
func (*showCmd) Usage() string {
	return `wlt show [-qr] [-html|-json] <id>

  Displays the balance, value, 24h change and address of the wallet <id>.
  Nothing is printed if no wallet has this identifier.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.qr, "qr", false, "also print the address as a QR code")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: show takes exactly one wallet identifier")
		return subcommands.ExitUsageError
	}
	holdings, err := loadHoldings()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	view := wallets.NewView(holdings, wallets.WithLogger(newLogger()))
	view.Select(f.Arg(0))
	if view.Page() != wallets.DetailPage {
		return subcommands.ExitSuccess
	}
	detail := renderer.NewDetail(view.Detail(), renderer.PageOptions{QR: c.qr})
	return c.print(renderer.RenderDetail(detail), detail)
}
