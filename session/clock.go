package session

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/wallets"
)

// loopClock is a wallets.Clock whose calls run on the program event loop.
type loopClock struct {
	send func(tea.Msg) // set once the program exists
}

func (c *loopClock) AfterFunc(d time.Duration, f func()) wallets.Timer {
	return time.AfterFunc(d, func() {
		if c.send != nil {
			c.send(timerMsg{f: f})
		}
	})
}
