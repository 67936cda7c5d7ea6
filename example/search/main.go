// Command search is an interactive demo: keystrokes are debounced into a
// single "search" per pause in typing, and saving (ctrl+s) is throttled to at
// most once per interval no matter how often the key is mashed.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abyMosa/elm-debounce/debounce"
	"github.com/abyMosa/elm-debounce/throttle"
)

// searchMsg is the settled query, delivered by the debouncer.
type searchMsg struct {
	query string
}

// saveMsg is a save request that made it through the throttle.
type saveMsg struct{}

type model struct {
	query    string
	results  string
	searches int
	saves    int

	search debounce.Model[searchMsg]
	save   throttle.Model[saveMsg]
}

func newModel() model {
	return model{
		search: debounce.New[searchMsg](400 * time.Millisecond),
		save:   throttle.New[saveMsg](2 * time.Second),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlS:
			m.save, cmd = m.save.Push(saveMsg{})
			return m, cmd

		case tea.KeyBackspace:
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
			}
			m.search, cmd = m.search.Push(searchMsg{query: m.query})
			return m, cmd

		case tea.KeySpace:
			m.query += " "
			m.search, cmd = m.search.Push(searchMsg{query: m.query})
			return m, cmd

		case tea.KeyRunes:
			m.query += string(msg.Runes)
			m.search, cmd = m.search.Push(searchMsg{query: m.query})
			return m, cmd
		}

	case debounce.Msg[searchMsg]:
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case throttle.Msg[saveMsg]:
		m.save, cmd = m.save.Update(msg)
		return m, cmd

	case searchMsg:
		m.searches++
		if msg.query == "" {
			m.results = "(empty query, nothing searched)"
		} else {
			m.results = fmt.Sprintf("pretend results for %q", msg.query)
		}

	case saveMsg:
		m.saves++
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Search: %s_\n\n", m.query)
	fmt.Fprintf(&b, "  %s\n\n", m.results)
	fmt.Fprintf(&b, "  searches run: %d   saves: %d   save gate: %s\n\n",
		m.searches, m.saves, m.save.Gate())
	b.WriteString("  type to search (debounced 400ms) · ctrl+s to save (throttled 2s) · esc to quit\n")

	return b.String()
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
