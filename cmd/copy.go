package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallets"
	"github.com/google/subcommands"
)

type copyCmd struct{}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy the address of a wallet to the clipboard" }
func (*copyCmd) Usage() string {
	return `wlt copy <id>

  Copies the address of the wallet <id> to the system clipboard.
  Exits with status 1 if the clipboard could not be written.
`
}

func (c *copyCmd) SetFlags(f *flag.FlagSet) {}

func (c *copyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: copy takes exactly one wallet identifier")
		return subcommands.ExitUsageError
	}
	holdings, err := loadHoldings()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	log := newLogger()
	defer log.Sync()

	view := wallets.NewView(holdings,
		wallets.WithClipboard(newClipboard()),
		wallets.WithNotifier(wallets.NotifierFunc(printNotification)),
		wallets.WithLogger(log),
	)
	defer view.Back()

	view.Select(f.Arg(0))
	detail := view.Detail()
	if detail == nil {
		return subcommands.ExitSuccess
	}
	detail.CopyAddress(ctx)
	if !detail.Copied() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
