package debounce

import (
	"github.com/abyMosa/elm-debounce/event"
)

// Event returns a listener for the named UI event that pushes the fixed
// candidate through the debouncer every time the event fires.
func (m Model[M]) Event(name string, candidate M) event.Attribute {
	return m.On(name, event.Succeed(candidate))
}

// ComposeEvent returns a listener that JSON-decodes the event payload into E
// and pushes the composed candidate through the debouncer. It is a
// package-level function because methods cannot introduce the payload type
// parameter.
func ComposeEvent[E, M any](m Model[M], name string, compose func(E) M) event.Attribute {
	return m.On(name, event.Unmarshal(compose))
}

// On returns a listener for the named UI event that decodes the payload into
// a candidate and pushes it through the debouncer.
func (m Model[M]) On(name string, decode event.Decoder[M]) event.Attribute {
	return m.Custom(name, plain(decode))
}

// StopPropagationOn is On with event propagation stopped.
func (m Model[M]) StopPropagationOn(name string, decode event.Decoder[M]) event.Attribute {
	return m.Custom(name, func(payload []byte) (event.Custom[M], error) {
		c, err := plain(decode)(payload)
		c.StopPropagation = true

		return c, err
	})
}

// PreventDefaultOn is On with the event's default behavior prevented.
func (m Model[M]) PreventDefaultOn(name string, decode event.Decoder[M]) event.Attribute {
	return m.Custom(name, func(payload []byte) (event.Custom[M], error) {
		c, err := plain(decode)(payload)
		c.PreventDefault = true

		return c, err
	})
}

// Custom returns a listener whose decoder yields both the candidate and the
// propagation flags for each individual event.
func (m Model[M]) Custom(name string, decode event.Decoder[event.Custom[M]]) event.Attribute {
	return event.Attribute{
		Event: name,
		Handle: func(payload []byte) (event.Handled, error) {
			c, err := decode(payload)
			if err != nil {
				return event.Handled{}, err
			}

			return event.Handled{
				Msg:             pushMsg[M]{candidate: c.Msg},
				StopPropagation: c.StopPropagation,
				PreventDefault:  c.PreventDefault,
			}, nil
		},
	}
}

// plain lifts a candidate decoder into a custom decoder with no flags set.
func plain[M any](decode event.Decoder[M]) event.Decoder[event.Custom[M]] {
	return func(payload []byte) (event.Custom[M], error) {
		msg, err := decode(payload)
		if err != nil {
			return event.Custom[M]{}, err
		}

		return event.Custom[M]{Msg: msg}, nil
	}
}
