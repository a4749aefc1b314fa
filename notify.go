package wallets

import (
	"context"
	"errors"
)

// ErrClipboardWrite is the error of a failed clipboard write. Clipboard
// implementations wrap their cause with it.
var ErrClipboardWrite = errors.New("clipboard write failed")

// Clipboard is where addresses are copied to.
type Clipboard interface {
	// WriteText replaces the clipboard content with text.
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context, text string) error

func (f ClipboardFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// noClipboard is used when no clipboard was configured, every write fails.
type noClipboard struct{}

func (noClipboard) WriteText(context.Context, string) error {
	return errors.Join(ErrClipboardWrite, errors.New("no clipboard available"))
}

// Severity tells how a notification should be shown.
type Severity int

const (
	Normal Severity = iota
	Destructive
)

func (s Severity) String() string {
	switch s {
	case Normal:
		return "normal"
	case Destructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Notification is a short, non blocking message for the user.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier shows notifications. It is fire and forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}
