// Package schedule adapts the bubbletea effect runtime into the two timer
// operations the engines need: delayed delivery and next-pass delivery.
package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// After returns a command that delivers msg back into the message loop once d
// has elapsed. Delivery is never earlier than d, and ordering between
// deliveries follows their absolute fire times.
func After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Now returns a command that delivers msg on the next pass of the message
// loop. It exists so an engine can emit without calling into application code
// from inside its own update.
func Now(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
