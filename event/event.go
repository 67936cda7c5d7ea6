// Package event describes UI event listeners as plain data.
//
// An Attribute names a UI event and carries a handler that turns the event's
// raw payload into a message for the application's update loop. Because an
// Attribute is just data, a renderer can decide at render time whether to
// attach it at all; the throttle package uses this to omit listeners entirely
// while its gate is closed.
package event

import (
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Attribute binds a named UI event to a handler. The zero value is the inert
// attribute: it names no event and renderers must skip it.
type Attribute struct {
	// Event is the UI event name, e.g. "click" or "input".
	Event string

	// Handle turns the raw event payload into a message plus propagation
	// flags. A nil Handle marks the attribute as inert.
	Handle func(payload []byte) (Handled, error)
}

// Handled is what a fired listener yields to the renderer: the message to
// dispatch and whether the event should stop propagating or have its default
// behavior prevented.
type Handled struct {
	Msg             tea.Msg
	StopPropagation bool
	PreventDefault  bool
}

// Custom is the result shape for decoders that choose propagation flags per
// event rather than statically per attribute.
type Custom[M any] struct {
	Msg             M
	StopPropagation bool
	PreventDefault  bool
}

// None returns the inert attribute. Renderers attach nothing for it.
func None() Attribute {
	return Attribute{}
}

// IsNone reports whether the attribute is inert.
func (a Attribute) IsNone() bool {
	return a.Handle == nil
}

// Decoder extracts a value from a raw event payload.
type Decoder[M any] func(payload []byte) (M, error)

// Succeed returns a Decoder that ignores the payload and always yields msg.
func Succeed[M any](msg M) Decoder[M] {
	return func([]byte) (M, error) {
		return msg, nil
	}
}

// Unmarshal returns a Decoder that JSON-decodes the payload into E and maps
// it to a message with f.
func Unmarshal[E, M any](f func(E) M) Decoder[M] {
	return func(payload []byte) (M, error) {
		var e E
		if err := json.Unmarshal(payload, &e); err != nil {
			var zero M
			return zero, fmt.Errorf("decode event payload: %w", err)
		}

		return f(e), nil
	}
}
