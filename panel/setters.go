package panel

import (
	"fmt"
	"math"
	"time"
)

// SetHandlerHeight changes the collapsed height. It panics if the value is
// negative or above the max height.
func (m *Model) SetHandlerHeight(v float64) {
	if err := validateHeights(v, m.cfg.MaxHeight); err != nil {
		panic(err)
	}
	m.cfg.HandlerHeight = v
	m.heights.setBounds(v, m.cfg.MaxHeight)
	m.reassert()
}

// SetMaxHeight changes the expanded height. It panics if the value is below
// the handler height.
func (m *Model) SetMaxHeight(v float64) {
	if err := validateHeights(m.cfg.HandlerHeight, v); err != nil {
		panic(err)
	}
	m.cfg.MaxHeight = v
	m.heights.setBounds(m.cfg.HandlerHeight, v)
	m.reassert()
}

// SetSensitivity changes the threshold divisor. Values below 1 disable the
// band and are stored as 0.
func (m *Model) SetSensitivity(s float64) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		panic(fmt.Errorf("%w: sensitivity must be finite, got %v", ErrInvalidConfig, s))
	}
	m.cfg.Sensitivity = clampSensitivity(s)
}

// SetAnimationDuration changes the transition length. A running transition
// keeps its tick count but is measured against the new duration.
func (m *Model) SetAnimationDuration(d time.Duration) {
	if err := validateDuration("animation duration", d); err != nil {
		panic(err)
	}
	m.cfg.AnimationDuration = d
	m.anim.duration = d
}

// reassert moves a resting panel to the height of its state after a
// geometry change.
func (m *Model) reassert() {
	if m.anim.animating() || m.drag.IsDragging() || m.scroll.scrolling {
		return
	}
	if m.heights.height != m.resting(m.state) {
		m.heights.setHeight(m.resting(m.state))
	}
	m.syncHost()
}
