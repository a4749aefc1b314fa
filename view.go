package wallets

import "go.uber.org/zap"

// Page is what a View currently shows.
type Page int

const (
	// ListPage shows all holdings, there is no selection.
	ListPage Page = iota
	// DetailPage shows the selected holding.
	DetailPage
	// EmptyPage is shown when the selection matches no holding.
	EmptyPage
)

func (p Page) String() string {
	switch p {
	case ListPage:
		return "list"
	case DetailPage:
		return "detail"
	case EmptyPage:
		return "empty"
	default:
		return "unknown"
	}
}

// options are the collaborators shared by a View and its details.
type options struct {
	clipboard Clipboard
	notifier  Notifier
	clock     Clock
	log       *zap.Logger
}

// Option configures a View.
type Option func(*options)

// WithClipboard sets where addresses are copied to. Without it every copy fails.
func WithClipboard(c Clipboard) Option { return func(o *options) { o.clipboard = c } }

// WithNotifier sets where copy notifications go. They are discarded by default.
func WithNotifier(n Notifier) Option { return func(o *options) { o.notifier = n } }

// WithClock sets the clock used for the copy feedback reset. Default is SystemClock.
func WithClock(c Clock) Option { return func(o *options) { o.clock = c } }

// WithLogger sets the logger for diagnostics. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

// View is the wallets page. It owns the selection: none means the list is
// shown, otherwise the detail of the selected holding is.
//
// A View is not safe for concurrent use, it is meant to be driven by a single
// event loop.
type View struct {
	holdings Holdings
	opts     options

	selected     string
	hasSelection bool
	detail       *Detail // mounted detail, nil on list and empty pages
}

// NewView returns a view of holdings, showing the list.
func NewView(holdings Holdings, opts ...Option) *View {
	o := options{
		clipboard: noClipboard{},
		notifier:  discardNotifier{},
		clock:     SystemClock,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &View{holdings: holdings, opts: o}
}

// Holdings returns the holdings shown by the view.
func (v *View) Holdings() Holdings { return v.holdings }

// Selected returns the selected identifier, ok is false on the list page.
func (v *View) Selected() (id string, ok bool) { return v.selected, v.hasSelection }

// Select selects the holding id and mounts its detail.
//
// Selecting the identifier already selected keeps the current detail. An
// unknown identifier is still selected, the view then shows the EmptyPage.
func (v *View) Select(id string) {
	if v.hasSelection && v.selected == id {
		return
	}
	v.unmount()
	v.selected, v.hasSelection = id, true
	if h, ok := v.holdings.Find(id); ok {
		v.detail = newDetail(h, &v.opts)
	}
	v.opts.log.Debug("holding selected", zap.String("holding", id), zap.Bool("found", v.detail != nil))
}

// Back clears the selection, the view shows the list again.
// It always succeeds, calling it on the list page does nothing.
func (v *View) Back() {
	v.unmount()
	v.selected, v.hasSelection = "", false
}

// unmount tears the current detail down, discarding its pending feedback reset.
func (v *View) unmount() {
	if v.detail != nil {
		v.detail.Close()
		v.detail = nil
	}
}

// Detail returns the mounted detail, nil unless Page is DetailPage.
func (v *View) Detail() *Detail { return v.detail }

// Page returns what the view currently shows.
func (v *View) Page() Page {
	switch {
	case !v.hasSelection:
		return ListPage
	case v.detail == nil:
		return EmptyPage
	default:
		return DetailPage
	}
}
