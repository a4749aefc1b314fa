package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallets/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	format
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all wallets with their total balance" }
func (*listCmd) Usage() string {
	return `wlt list [-html|-json]

  Displays the total balance, the number of wallets and one row per wallet
  with its balance, value and 24h change.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "Error: list takes no arguments")
		return subcommands.ExitUsageError
	}
	holdings, err := loadHoldings()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	list := renderer.NewList(holdings)
	return c.print(renderer.RenderList(list), list)
}
