// Command watch coalesces bursts of file-system change events into single
// reload notifications. Saving a file typically fires several fsnotify events
// back to back; the debouncer lets the burst settle before announcing one
// reload.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/abyMosa/elm-debounce/debounce"
)

// changeMsg is a raw watcher event injected into the program.
type changeMsg struct {
	name string
	op   fsnotify.Op
}

// reloadMsg is the settled notification carrying the file that ended the burst.
type reloadMsg struct {
	trigger string
}

type model struct {
	logger  *slog.Logger
	reload  debounce.Model[reloadMsg]
	changes int
	reloads int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case changeMsg:
		m.changes++
		m.logger.Debug("change", "file", msg.name, "op", msg.op.String())
		m.reload, cmd = m.reload.Push(reloadMsg{trigger: msg.name})
		return m, cmd

	case debounce.Msg[reloadMsg]:
		m.reload, cmd = m.reload.Update(msg)
		return m, cmd

	case reloadMsg:
		m.reloads++
		m.logger.Info("reload",
			"trigger", msg.trigger,
			"changes", m.changes,
			"reloads", m.reloads,
		)
	}

	return m, nil
}

func (m model) View() string {
	return ""
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("create watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		logger.Error("watch directory", "dir", dir, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	p := tea.NewProgram(
		model{
			logger: logger,
			reload: debounce.New[reloadMsg](500 * time.Millisecond),
		},
		tea.WithContext(ctx),
		tea.WithoutRenderer(),
		tea.WithInput(nil),
	)

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				p.Send(changeMsg{name: ev.Name, op: ev.Op})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("watch error", "error", err)
			}
		}
	}()

	logger.Info("watching", "dir", dir)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("program failed", "error", err)
		os.Exit(1)
	}
}
