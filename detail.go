package wallets

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CopyFeedbackDuration is how long a Detail reports Copied after a successful copy.
const CopyFeedbackDuration = 2000 * time.Millisecond

// Messages of copy notifications.
const (
	MsgAddressCopied = "Wallet address copied to clipboard"
	MsgCopyFailed    = "Failed to copy address"
)

// Detail is the detail view of one holding, mounted by a View.
//
// Its "copied" flag is raised by a successful copy and lowered
// CopyFeedbackDuration after the latest one. The pending reset belongs to
// the Detail: Close discards it.
type Detail struct {
	holding Holding
	opts    *options

	mu     sync.Mutex
	copied bool
	gen    uint64 // successful copies so far, identifies the live reset
	reset  Timer
	closed bool
}

func newDetail(h Holding, opts *options) *Detail {
	return &Detail{holding: h, opts: opts}
}

// Holding returns the holding shown.
func (d *Detail) Holding() Holding { return d.holding }

// Copied reports whether the address was copied less than CopyFeedbackDuration ago.
func (d *Detail) Copied() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.copied
}

// CopyAddress writes the holding address to the clipboard and settles the outcome.
// Failures are reported to the user and logged, never returned.
func (d *Detail) CopyAddress(ctx context.Context) {
	d.SettleCopy(d.opts.clipboard.WriteText(ctx, d.holding.Address))
}

// SettleCopy applies the outcome of writing the address to the clipboard.
//
// It is meant for event loops that perform the write themselves, so that
// the state only changes on the loop. CopyAddress calls it.
func (d *Detail) SettleCopy(err error) {
	if err != nil {
		d.opts.log.Error("failed to copy address", zap.String("holding", d.holding.ID), zap.Error(err))
		d.opts.notifier.Notify(Notification{Message: MsgCopyFailed, Severity: Destructive})
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.copied = true
		d.gen++
		gen := d.gen
		if d.reset != nil {
			d.reset.Stop()
		}
		d.reset = d.opts.clock.AfterFunc(CopyFeedbackDuration, func() { d.expire(gen) })
	}
	d.mu.Unlock()

	d.opts.notifier.Notify(Notification{Message: MsgAddressCopied, Severity: Normal})
}

// expire lowers the flag if gen is still the latest successful copy.
func (d *Detail) expire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || gen != d.gen {
		return
	}
	d.copied = false
	d.reset = nil
}

// Close tears the detail down. A pending reset will not touch it anymore.
func (d *Detail) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.reset != nil {
		d.reset.Stop()
		d.reset = nil
	}
}
