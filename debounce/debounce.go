// Package debounce provides a trailing-edge debounce engine for message-driven
// applications, i.e., it ensures that out of a burst of candidate messages only
// the most recent one is delivered, once no new candidate has arrived for a
// configured cooldown.
//
// Debouncing can be useful in scenarios where messages are produced rapidly,
// such as in response to user input, but the underlying operation is expensive
// and only needs to be performed once per batch of messages.
//
// The engine is a pure state machine in the bubbletea discipline: Push and
// Update are synchronous, never block, and describe their side effects as
// tea.Cmd values which the program's runtime executes and feeds back as
// control messages. Route every Msg the runtime delivers into Update:
//
//	case debounce.Msg[query]:
//		m.search, cmd = m.search.Update(msg)
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abyMosa/elm-debounce/internal/schedule"
)

// Model holds the debounce state for candidate messages of type M. Model is a
// value: Push and Update return the successor state rather than mutating in
// place. The zero value debounces with a zero cooldown, i.e., it emits every
// candidate synchronously; use New to set a cooldown.
type Model[M any] struct {
	cooldown time.Duration
	queued   int
	latest   M
}

// Msg is a control message addressed to a debounce Model. Values of this type
// are produced by the commands a Model returns and by its event adapters, and
// must be fed back into the same Model's Update. The set of implementations
// is closed.
type Msg[M any] interface {
	debounceMsg()
}

// settleCheck is the delayed self-check scheduled by every push. It carries
// the queue length observed when it was scheduled; only the check whose count
// still matches at delivery time is allowed to emit.
type settleCheck[M any] struct {
	count int
}

// pushMsg routes a candidate through the update loop. It is produced by the
// event adapters and is equivalent to calling Push directly.
type pushMsg[M any] struct {
	candidate M
}

func (settleCheck[M]) debounceMsg() {}
func (pushMsg[M]) debounceMsg()     {}

// New returns a Model that delivers only the last candidate of a burst, once
// no new candidate has been pushed for the cooldown duration.
//
// A cooldown <= 0 disables debouncing: every pushed candidate is emitted
// individually on the next pass of the message loop.
func New[M any](cooldown time.Duration) Model[M] {
	return Model[M]{cooldown: cooldown}
}

// Push records candidate as the latest value and schedules a settle check for
// one cooldown from now. Nothing is ever emitted from Push itself; emission
// happens in Update when a settle check finds that no newer push has occurred.
func (m Model[M]) Push(candidate M) (Model[M], tea.Cmd) {
	if m.cooldown <= 0 {
		return m, schedule.Now(candidate)
	}

	m.queued++
	m.latest = candidate

	return m, schedule.After(m.cooldown, settleCheck[M]{count: m.queued})
}

// Update applies a control message delivered by the runtime.
//
// A settle check whose count equals the current queue length means no push
// happened since it was scheduled: the latest candidate is emitted as a
// command and the model resets. A check with any other count is stale, since
// a newer push has scheduled its own check, and is ignored without touching
// state.
func (m Model[M]) Update(msg Msg[M]) (Model[M], tea.Cmd) {
	switch msg := msg.(type) {
	case settleCheck[M]:
		if msg.count != m.queued {
			return m, nil
		}

		settled := m.latest

		var zero M
		m.queued = 0
		m.latest = zero

		return m, schedule.Now(settled)

	case pushMsg[M]:
		return m.Push(msg.candidate)
	}

	return m, nil
}

// Cooldown returns the configured quiet period.
func (m Model[M]) Cooldown() time.Duration {
	return m.cooldown
}

// Pending returns the number of candidates pushed since the last emission.
func (m Model[M]) Pending() int {
	return m.queued
}
