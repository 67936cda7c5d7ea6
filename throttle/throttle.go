// Package throttle provides a leading-edge throttle engine for message-driven
// applications: the first candidate of a burst is delivered immediately, then
// the gate closes and every candidate is dropped until a configured interval
// has passed.
//
// Like its sibling package debounce, the engine is a pure state machine in
// the bubbletea discipline: Push and Update are synchronous, never block, and
// describe their side effects as tea.Cmd values which the program's runtime
// executes and feeds back as control messages.
package throttle

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abyMosa/elm-debounce/internal/schedule"
)

// Gate is the throttle's admission state.
type Gate int

const (
	// Open admits the next candidate.
	Open Gate = iota
	// Closed drops every candidate until the reopen fires.
	Closed
)

// String returns "open" or "closed".
func (g Gate) String() string {
	if g == Closed {
		return "closed"
	}

	return "open"
}

// Model holds the throttle state for candidate messages of type M. Model is a
// value: Push and Update return the successor state. The zero value never
// gates; use New to set an interval.
type Model[M any] struct {
	interval time.Duration
	gate     Gate
}

// Msg is a control message addressed to a throttle Model. The set of
// implementations is closed.
type Msg[M any] interface {
	throttleMsg()
}

// reopenMsg is the delayed notification that reopens the gate.
type reopenMsg[M any] struct{}

// emitMsg routes a candidate through the update loop. It is produced by the
// event adapters and is equivalent to calling Push directly.
type emitMsg[M any] struct {
	candidate M
}

func (reopenMsg[M]) throttleMsg() {}
func (emitMsg[M]) throttleMsg()   {}

// New returns a Model that delivers at most one candidate per interval,
// starting with the gate open.
//
// An interval <= 0 disables throttling: every pushed candidate is emitted on
// the next pass of the message loop and the gate never closes.
func New[M any](interval time.Duration) Model[M] {
	return Model[M]{interval: interval}
}

// Push delivers candidate immediately if the gate is open, closing it and
// scheduling the reopen for one interval from now. While the gate is closed
// the candidate is dropped and no command is issued, so exactly one reopen is
// pending per emission regardless of how many pushes were dropped.
func (m Model[M]) Push(candidate M) (Model[M], tea.Cmd) {
	if m.interval <= 0 {
		return m, schedule.Now(candidate)
	}

	if m.gate == Closed {
		return m, nil
	}

	m.gate = Closed

	return m, tea.Batch(
		schedule.Now(candidate),
		schedule.After(m.interval, reopenMsg[M]{}),
	)
}

// Update applies a control message delivered by the runtime. A reopen sets
// the gate open and is idempotent; an emit behaves exactly like Push.
func (m Model[M]) Update(msg Msg[M]) (Model[M], tea.Cmd) {
	switch msg := msg.(type) {
	case reopenMsg[M]:
		m.gate = Open
		return m, nil

	case emitMsg[M]:
		return m.Push(msg.candidate)
	}

	return m, nil
}

// Gate returns the current admission state. The event adapters consult it at
// bind time so a closed throttle attaches no listener at all.
func (m Model[M]) Gate() Gate {
	return m.gate
}

// Interval returns the configured suppression window.
func (m Model[M]) Interval() time.Duration {
	return m.interval
}
