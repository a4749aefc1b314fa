// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
	"github.com/etnz/wallets"
)

// ErrUnsupported is the cause of writes on a platform without clipboard utility.
var ErrUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// System is the system clipboard.
type System struct {
	// write is the underlying write, atotto.WriteAll unless replaced in tests.
	write func(string) error
	// unsupported reports whether the platform has no clipboard utility.
	unsupported bool
}

// New returns the system clipboard.
func New() *System {
	return &System{write: atotto.WriteAll, unsupported: atotto.Unsupported}
}

// WriteText implements wallets.Clipboard. Errors wrap wallets.ErrClipboardWrite.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", wallets.ErrClipboardWrite, err)
	}
	if s.unsupported {
		return fmt.Errorf("%w: %w", wallets.ErrClipboardWrite, ErrUnsupported)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %w", wallets.ErrClipboardWrite, err)
	}
	return nil
}
