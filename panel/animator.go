package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type direction int

const (
	opening direction = iota
	closing
)

func (d direction) target() State {
	if d == opening {
		return Open
	}
	return Closed
}

func directionTo(s State) direction {
	if s == Open {
		return opening
	}
	return closing
}

// animationRun is one transition. It lives until it completes or a newer
// run replaces it.
type animationRun struct {
	id            int
	startProgress float64
	elapsedTicks  int
	dir           direction
}

// fraction returns elapsed/total clamped to 1.
func (r *animationRun) fraction(totalTicks float64) float64 {
	if totalTicks <= 0 {
		return 1
	}
	f := float64(r.elapsedTicks) / totalTicks
	if f > 1 {
		return 1
	}
	return f
}

// progressAt interpolates linearly from the start progress to the target.
func (r *animationRun) progressAt(f float64) float64 {
	if r.dir == opening {
		return r.startProgress + (1-r.startProgress)*f
	}
	return r.startProgress * (1 - f)
}

// tickMsg is sent by the tick source of a run.
type tickMsg struct {
	panel string
	run   int
}

// doneMsg is the completion signal of a run, delivered after the full
// animation duration independently of the ticks.
type doneMsg struct {
	panel string
	run   int
}

// animator drives at most one run at a time. Starting a run discards the
// previous one; messages from a discarded run are ignored because their id
// no longer matches.
type animator struct {
	panel    string
	duration time.Duration
	interval time.Duration

	nextID int
	run    *animationRun
}

func newAnimator(panelID string, duration, interval time.Duration) *animator {
	return &animator{panel: panelID, duration: duration, interval: interval}
}

// totalTicks is duration expressed in ticks.
func (a *animator) totalTicks() float64 {
	return float64(a.duration) / float64(a.interval)
}

func (a *animator) animating() bool { return a.run != nil }

// heading returns the direction of the active run.
func (a *animator) heading() (direction, bool) {
	if a.run == nil {
		return opening, false
	}
	return a.run.dir, true
}

// start begins a new run and returns the commands that drive it.
func (a *animator) start(dir direction, startProgress float64) (*animationRun, tea.Cmd) {
	a.nextID++
	a.run = &animationRun{
		id:            a.nextID,
		startProgress: clamp01(startProgress),
		dir:           dir,
	}
	return a.run, tea.Batch(a.tickCmd(a.run.id), a.doneCmd(a.run.id))
}

func (a *animator) cancel() { a.run = nil }

// tick advances the run with the given id. ok is false for stale ids. more
// reports whether another tick should be scheduled.
func (a *animator) tick(id int) (progress float64, more, ok bool) {
	if a.run == nil || a.run.id != id {
		return 0, false, false
	}
	a.run.elapsedTicks++
	f := a.run.fraction(a.totalTicks())
	return a.run.progressAt(f), f < 1, true
}

// finish ends the run with the given id and returns its direction.
func (a *animator) finish(id int) (direction, bool) {
	if a.run == nil || a.run.id != id {
		return opening, false
	}
	dir := a.run.dir
	a.run = nil
	return dir, true
}

func (a *animator) tickCmd(id int) tea.Cmd {
	panelID := a.panel
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return tickMsg{panel: panelID, run: id}
	})
}

func (a *animator) doneCmd(id int) tea.Cmd {
	panelID := a.panel
	return tea.Tick(a.duration, func(time.Time) tea.Msg {
		return doneMsg{panel: panelID, run: id}
	})
}
