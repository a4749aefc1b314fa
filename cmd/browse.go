package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/wallets/session"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type browseCmd struct{}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "browse wallets interactively" }
func (*browseCmd) Usage() string {
	return `wlt browse

  Opens the wallets page in the terminal.

  On the list, ↑/↓ move between wallets and enter opens one.
  On a wallet, c copies its address and b or esc goes back to the list.
  q quits.
`
}

func (c *browseCmd) SetFlags(f *flag.FlagSet) {}

func (c *browseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := loadHoldings()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	// the terminal belongs to the session, logs go to a file or nowhere.
	log := zap.NewNop()
	if cfg.LogFile != "" {
		log = newLogger()
		defer log.Sync()
	}

	m := session.New(ctx, holdings, session.Options{
		Clipboard: newClipboard(),
		Logger:    log,
		Style:     cfg.Style,
	})
	if err := session.Run(ctx, m); err != nil {
		fmt.Fprintf(stderr, "Error running session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
