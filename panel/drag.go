// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DragState represents the current state of a drag operation
type DragState int

const (
	DragStateIdle DragState = iota
	DragStatePressed
	DragStateDragging
)

// DragEventKind says what a handled mouse event meant for the panel
type DragEventKind int

const (
	DragNone DragEventKind = iota
	DragBegin
	DragMove
	DragEnd
	DragTap
)

// DragEvent is the result of feeding one mouse event to a DragHandler
type DragEvent struct {
	Kind DragEventKind
	// DeltaY is the vertical movement since the previous event, positive
	// downwards. Set for DragMove.
	DeltaY int
	// Velocity is the release velocity in rows per second. Set for DragEnd.
	Velocity float64
}

type dragSample struct {
	at time.Time
	dy int
}

// DragHandler turns left button press/motion/release on the handle into
// vertical drag gestures. A release without motion is a tap.
type DragHandler struct {
	state   DragState
	lastY   int
	samples []dragSample
	window  time.Duration
	now     func() time.Time
}

// NewDragHandler creates a drag handler. Motion within window before the
// release counts towards the release velocity.
func NewDragHandler(window time.Duration, now func() time.Time) *DragHandler {
	if now == nil {
		now = time.Now
	}
	return &DragHandler{
		state:  DragStateIdle,
		window: window,
		now:    now,
	}
}

// HandleMouseEvent processes mouse events for drag operations. hit reports
// whether a press lands on the handle. Returns true if the event was
// consumed.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, hit func(tea.MouseMsg) bool) (bool, DragEvent) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && d.state == DragStateIdle && hit != nil && hit(msg) {
			d.startDrag(msg.Y)
			return true, DragEvent{Kind: DragBegin}
		}
	case tea.MouseActionMotion:
		if d.state == DragStateIdle {
			return false, DragEvent{}
		}
		deltaY := msg.Y - d.lastY
		if deltaY == 0 {
			return true, DragEvent{}
		}
		d.lastY = msg.Y
		d.state = DragStateDragging
		d.record(deltaY)
		return true, DragEvent{Kind: DragMove, DeltaY: deltaY}
	case tea.MouseActionRelease:
		if d.state == DragStateIdle {
			return false, DragEvent{}
		}
		if d.state == DragStatePressed {
			d.stopDrag()
			return true, DragEvent{Kind: DragTap}
		}
		v := d.velocity()
		d.stopDrag()
		return true, DragEvent{Kind: DragEnd, Velocity: v}
	}
	return false, DragEvent{}
}

// IsDragging returns true between a press on the handle and its release
func (d *DragHandler) IsDragging() bool {
	return d.state != DragStateIdle
}

// State returns the current drag state
func (d *DragHandler) State() DragState {
	return d.state
}

// velocity sums motion inside the trailing window, in rows per second.
func (d *DragHandler) velocity() float64 {
	if d.window <= 0 {
		return 0
	}
	cutoff := d.now().Add(-d.window)
	sum := 0
	for _, s := range d.samples {
		if !s.at.Before(cutoff) {
			sum += s.dy
		}
	}
	return float64(sum) / d.window.Seconds()
}

func (d *DragHandler) record(dy int) {
	now := d.now()
	cutoff := now.Add(-d.window)
	kept := d.samples[:0]
	for _, s := range d.samples {
		if !s.at.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	d.samples = append(kept, dragSample{at: now, dy: dy})
}

// startDrag begins a drag operation
func (d *DragHandler) startDrag(y int) {
	d.state = DragStatePressed
	d.lastY = y
	d.samples = d.samples[:0]
}

// stopDrag ends the current drag operation
func (d *DragHandler) stopDrag() {
	d.state = DragStateIdle
	d.lastY = 0
	d.samples = d.samples[:0]
}
