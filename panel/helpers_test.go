package panel

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testConfig uses a 40/400 geometry with sensitivity 8.
func testConfig() Config {
	return Config{
		HandlerHeight:     40,
		MaxHeight:         400,
		Sensitivity:       8,
		AnimationDuration: 10 * time.Millisecond,
		TickInterval:      time.Millisecond,
		FlickWindow:       80 * time.Millisecond,
		ScrollSettle:      150 * time.Millisecond,
	}
}

// recorder keeps every notification in arrival order.
type recorder struct {
	events   []string
	opens    []bool
	heights  []float64
	progress []float64
}

func (r *recorder) OpenStatusChanged(open bool) {
	r.opens = append(r.opens, open)
	r.events = append(r.events, fmt.Sprintf("open:%t", open))
}

func (r *recorder) ProgressChanged(p float64) {
	r.progress = append(r.progress, p)
	r.events = append(r.events, fmt.Sprintf("progress:%g", p))
}

func (r *recorder) HeightChanged(h float64) {
	r.heights = append(r.heights, h)
	r.events = append(r.events, fmt.Sprintf("height:%g", h))
}

func (r *recorder) reset() {
	*r = recorder{}
}

// tickAll feeds tick messages for the active run until the tick source stops.
func tickAll(t *testing.T, m *Model) {
	t.Helper()
	require.NotNil(t, m.anim.run, "no active run")
	id := m.anim.run.id
	for i := 0; ; i++ {
		require.Less(t, i, 100000, "tick source never stopped")
		_, cmd := m.Update(tickMsg{panel: m.id, run: id})
		if cmd == nil {
			return
		}
	}
}

// complete runs the active transition to its completion signal.
func complete(t *testing.T, m *Model) {
	t.Helper()
	require.NotNil(t, m.anim.run, "no active run")
	id := m.anim.run.id
	tickAll(t, m)
	m.Update(doneMsg{panel: m.id, run: id})
}

// requireConfigPanic asserts fn panics with an ErrInvalidConfig error.
func requireConfigPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
	}()
	fn()
}
