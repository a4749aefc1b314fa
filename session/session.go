// Package session is the interactive wallets page: a terminal program where
// the user moves through the holdings list, opens a holding and copies its
// address.
//
// Every state change happens on the program event loop: clipboard writes run
// as commands and settle through a message, timers fire through a message.
package session

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/wallets"
	"github.com/etnz/wallets/renderer"
	"go.uber.org/zap"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3 * time.Second

const defaultWidth = 100

var (
	toastStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	destructiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Options holds the collaborators of a session.
type Options struct {
	Clipboard wallets.Clipboard
	Logger    *zap.Logger
	Style     string // glamour style, renderer.AutoStyle by default
}

// Model is the bubbletea model of the wallets page.
type Model struct {
	ctx       context.Context
	view      *wallets.View
	clock     *loopClock
	clipboard wallets.Clipboard
	log       *zap.Logger
	style     string
	width     int

	cursor int // highlighted row on the list page

	toast    *wallets.Notification
	toastGen int // incremented for each toast, identifies the live expiry
}

// New returns a session on holdings, showing the list.
func New(ctx context.Context, holdings wallets.Holdings, opts Options) *Model {
	m := &Model{
		ctx:       ctx,
		clock:     &loopClock{},
		clipboard: opts.Clipboard,
		log:       opts.Logger,
		style:     opts.Style,
		width:     defaultWidth,
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.style == "" {
		m.style = renderer.AutoStyle
	}
	vopts := []wallets.Option{
		wallets.WithClock(m.clock),
		wallets.WithNotifier(wallets.NotifierFunc(m.notify)),
		wallets.WithLogger(m.log),
	}
	if m.clipboard != nil {
		vopts = append(vopts, wallets.WithClipboard(m.clipboard))
	}
	m.view = wallets.NewView(holdings, vopts...)
	return m
}

// Run runs the session until the user quits or ctx is done.
func Run(ctx context.Context, m *Model) error {
	if m.style == renderer.AutoStyle {
		// the terminal cannot be queried once the program owns it.
		m.style = "light"
		if lipgloss.HasDarkBackground() {
			m.style = "dark"
		}
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	m.clock.send = p.Send
	_, err := p.Run()
	return err
}

// WalletsView returns the wallets view driven by the session.
func (m *Model) WalletsView() *wallets.View { return m.view }

// Cursor returns the highlighted row on the list page.
func (m *Model) Cursor() int { return m.cursor }

// Toast returns the notification on screen, if any.
func (m *Model) Toast() (wallets.Notification, bool) {
	if m.toast == nil {
		return wallets.Notification{}, false
	}
	return *m.toast, true
}

// notify shows n, it is called on the event loop by the view.
func (m *Model) notify(n wallets.Notification) {
	m.toast = &n
	m.toastGen++
}

// timerMsg carries a clock call back to the event loop.
type timerMsg struct{ f func() }

// copiedMsg is the outcome of a clipboard write for a detail.
type copiedMsg struct {
	detail *wallets.Detail
	err    error
}

// toastExpiredMsg clears the toast gen if it is still on screen.
type toastExpiredMsg struct{ gen int }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case timerMsg:
		msg.f()
	case copiedMsg:
		gen := m.toastGen
		msg.detail.SettleCopy(msg.err)
		if m.toastGen != gen {
			return m, m.expireToast()
		}
	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = nil
		}
	case tea.KeyMsg:
		return m, m.key(msg.String())
	}
	return m, nil
}

// key handles a key press, the bindings depend on the page.
func (m *Model) key(k string) tea.Cmd {
	if k == "ctrl+c" || k == "q" {
		return tea.Quit
	}
	switch m.view.Page() {
	case wallets.ListPage:
		ids := m.view.Holdings().IDs()
		switch k {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(ids)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < len(ids) {
				m.view.Select(ids[m.cursor])
			}
		}
	case wallets.DetailPage:
		switch k {
		case "c", "y":
			return m.copyAddress(m.view.Detail())
		case "b", "esc", "backspace", "left":
			m.view.Back()
		}
	default:
		switch k {
		case "b", "esc", "backspace", "left":
			m.view.Back()
		}
	}
	return nil
}

// copyAddress writes the address off the loop and settles it back on the loop.
func (m *Model) copyAddress(d *wallets.Detail) tea.Cmd {
	address := d.Holding().Address
	return func() tea.Msg {
		return copiedMsg{detail: d, err: m.write(address)}
	}
}

func (m *Model) write(text string) error {
	if m.clipboard == nil {
		// same outcome as a view without clipboard.
		return wallets.ErrClipboardWrite
	}
	return m.clipboard.WriteText(m.ctx, text)
}

func (m *Model) expireToast() tea.Cmd {
	gen := m.toastGen
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{gen: gen} })
}

func (m *Model) View() string {
	var md string
	switch m.view.Page() {
	case wallets.ListPage:
		l := renderer.NewList(m.view.Holdings())
		if m.cursor < len(l.Rows) {
			l.Rows[m.cursor].Marker = "▸ "
		}
		md = renderer.RenderList(l)
	default:
		md = renderer.RenderPage(m.view, renderer.PageOptions{})
	}

	var b strings.Builder
	out, err := renderer.Terminal(md, m.style, m.width)
	if err != nil {
		m.log.Warn("failed to render markdown", zap.Error(err))
		out = md
	}
	b.WriteString(out)

	if t, ok := m.Toast(); ok {
		style := toastStyle
		if t.Severity == wallets.Destructive {
			style = destructiveStyle
		}
		b.WriteString(style.Render(t.Message))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) help() string {
	switch m.view.Page() {
	case wallets.ListPage:
		return "↑/↓ move • enter open • q quit"
	case wallets.DetailPage:
		return "c copy address • b back • q quit"
	default:
		return "b back • q quit"
	}
}
