package panel

import "math"

// heightModel is the single owner of the panel height. Every writer (drag,
// scroll, animation, config change) goes through setHeight or setProgress.
type heightModel struct {
	handler float64
	max     float64

	height   float64
	progress float64

	obs *observers

	// quiet suppresses notifications for state-driven re-assertions.
	quiet bool
	// dispatching is set while observers run; writes they make are applied
	// without dispatching again.
	dispatching bool
}

func newHeightModel(handler, maxHeight float64, obs *observers) *heightModel {
	m := &heightModel{handler: handler, max: maxHeight, obs: obs}
	m.height = handler
	return m
}

// setHeight stores v (negative values become 0), recomputes progress and
// notifies height then progress observers.
func (m *heightModel) setHeight(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < 0 {
		v = 0
	}
	m.height = v
	m.progress = m.progressFor(v)
	m.notify()
}

// setProgress writes the height that corresponds to p.
func (m *heightModel) setProgress(p float64) {
	m.setHeight(m.heightFor(p))
}

// setQuietly writes v without notifying.
func (m *heightModel) setQuietly(v float64) {
	m.quiet = true
	defer func() { m.quiet = false }()
	m.setHeight(v)
}

func (m *heightModel) notify() {
	if m.quiet || m.dispatching || m.obs == nil {
		return
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()
	m.obs.height(m.height)
	m.obs.progress(m.progress)
}

// openStatus is the transition commit notification. It runs under the same
// dispatch guard as height writes.
func (m *heightModel) openStatus(open bool) {
	if m.dispatching || m.obs == nil {
		return
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()
	m.obs.openStatus(open)
}

func (m *heightModel) progressFor(h float64) float64 {
	span := m.max - m.handler
	if span <= 0 {
		if h > m.handler {
			return 1
		}
		return 0
	}
	return clamp01((h - m.handler) / span)
}

func (m *heightModel) heightFor(p float64) float64 {
	if math.IsNaN(p) || p <= 0 {
		return m.handler
	}
	return math.Min(m.handler+(m.max-m.handler)*p, m.max)
}

// setBounds changes the geometry without touching the stored height.
func (m *heightModel) setBounds(handler, maxHeight float64) {
	m.handler = handler
	m.max = maxHeight
	m.progress = m.progressFor(m.height)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
