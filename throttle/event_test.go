package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyMosa/elm-debounce/event"
)

func TestModel_Event_openGate(t *testing.T) {
	t.Parallel()

	m := New[string](10 * time.Millisecond)

	attr := m.Event("click", "clicked")

	require.False(t, attr.IsNone())
	assert.Equal(t, "click", attr.Event)

	handled, err := attr.Handle(nil)

	require.NoError(t, err)

	// The listener yields the engine's emit control message, which routes
	// through Update with the same semantics as Push.
	m, cmd := m.Update(handled.Msg.(Msg[string]))

	assert.Equal(t, Closed, m.Gate())
	msgs := unbatch(t, cmd)
	require.Len(t, msgs, 2)
	assert.Equal(t, "clicked", msgs[0])
}

// While the gate is closed no listener is attached at all, so a throttled
// event never even generates a message to discard.
func TestModel_Event_closedGate(t *testing.T) {
	t.Parallel()

	m := New[string](10 * time.Millisecond)
	m, _ = m.Push("x")
	require.Equal(t, Closed, m.Gate())

	assert.True(t, m.Event("click", "clicked").IsNone())
	assert.True(t, m.On("input", event.Succeed("s")).IsNone())
	assert.True(t, m.StopPropagationOn("click", event.Succeed("s")).IsNone())
	assert.True(t, m.PreventDefaultOn("submit", event.Succeed("s")).IsNone())
	assert.True(t, ComposeEvent(m, "input", func(s string) string { return s }).IsNone())
	assert.True(t, m.Custom("keydown", func([]byte) (event.Custom[string], error) {
		return event.Custom[string]{}, nil
	}).IsNone())
}

func TestModel_Event_reattachesAfterReopen(t *testing.T) {
	t.Parallel()

	m := New[string](10 * time.Millisecond)
	m, _ = m.Push("x")
	require.True(t, m.Event("click", "again").IsNone())

	m, _ = m.Update(reopenMsg[string]{})

	assert.False(t, m.Event("click", "again").IsNone())
}

func TestComposeEvent(t *testing.T) {
	t.Parallel()

	type clickEvent struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	type point struct{ x, y int }

	m := New[point](10 * time.Millisecond)
	attr := ComposeEvent(m, "mousemove", func(e clickEvent) point {
		return point{x: e.X, y: e.Y}
	})

	handled, err := attr.Handle([]byte(`{"x":3,"y":7}`))

	require.NoError(t, err)

	m, cmd := m.Update(handled.Msg.(Msg[point]))

	assert.Equal(t, Closed, m.Gate())
	msgs := unbatch(t, cmd)
	assert.Equal(t, point{x: 3, y: 7}, msgs[0])
}

func TestModel_OnVariants(t *testing.T) {
	t.Parallel()

	m := New[string](10 * time.Millisecond)

	stop := m.StopPropagationOn("click", event.Succeed("s"))
	prevent := m.PreventDefaultOn("submit", event.Succeed("p"))

	handled, err := stop.Handle(nil)
	require.NoError(t, err)
	assert.True(t, handled.StopPropagation)
	assert.False(t, handled.PreventDefault)

	handled, err = prevent.Handle(nil)
	require.NoError(t, err)
	assert.False(t, handled.StopPropagation)
	assert.True(t, handled.PreventDefault)
}

func TestModel_Custom(t *testing.T) {
	t.Parallel()

	type keyEvent struct {
		Key string `json:"key"`
	}

	m := New[string](10 * time.Millisecond)
	attr := m.Custom("keydown", event.Unmarshal(func(e keyEvent) event.Custom[string] {
		return event.Custom[string]{
			Msg:             e.Key,
			StopPropagation: true,
		}
	}))

	handled, err := attr.Handle([]byte(`{"key":"Escape"}`))

	require.NoError(t, err)
	assert.True(t, handled.StopPropagation)

	m, cmd := m.Update(handled.Msg.(Msg[string]))

	assert.Equal(t, Closed, m.Gate())
	msgs := unbatch(t, cmd)
	assert.Equal(t, "Escape", msgs[0])
}

func TestModel_On_decoderError(t *testing.T) {
	t.Parallel()

	m := New[string](10 * time.Millisecond)
	attr := m.On("input", event.Unmarshal(func(s string) string { return s }))

	_, err := attr.Handle([]byte(`{broken`))

	assert.Error(t, err)

	// A failed decode must not have touched the gate.
	assert.Equal(t, Open, m.Gate())
}
