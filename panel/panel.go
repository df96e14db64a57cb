// Package panel implements a sticky sliding panel for Bubble Tea programs.
//
// The panel rests at a collapsed handler height and expands to a maximum
// height. It can be tapped, dragged by its handle or pulled through the
// mouse wheel, and always settles into one of two states, open or closed.
// Transitions are animated by a tick source so observers see every
// intermediate height.
package panel

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Model is the panel component. It is driven through Update like any other
// tea.Model; Open, Close and Toggle return the command that animates the
// transition.
type Model struct {
	id     string
	cfg    Config
	state  State
	host   Host
	styles Styles

	obs     observers
	heights *heightModel
	anim    *animator
	drag    *DragHandler
	scroll  *scrollCoupler

	zones  *zone.Manager
	logger *slog.Logger
	now    func() time.Time

	width    int
	hostSize tea.WindowSizeMsg

	// tapTarget is the state a tap on the handle moves to. It is taken on
	// press, before the press cancels any running transition.
	tapTarget State
}

var panelCounter atomic.Int64

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithZoneManager enables mouse hit testing. The caller must Scan the final
// view with the same manager.
func WithZoneManager(zm *zone.Manager) Option {
	return func(m *Model) { m.zones = zm }
}

// WithClock replaces time.Now for release velocity measurement.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithID sets the identifier used for zones and message routing.
func WithID(id string) Option {
	return func(m *Model) { m.id = id }
}

// WithStyles overrides DefaultStyles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// New creates a panel hosting host. A nil host gets an empty one. New
// panics if cfg is invalid.
func New(host Host, cfg Config, opts ...Option) *Model {
	cfg = cfg.normalized()
	if host == nil {
		host = &blankHost{}
	}

	m := &Model{
		cfg:    cfg,
		host:   host,
		styles: DefaultStyles(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.id == "" {
		m.id = m.newID()
	}

	m.heights = newHeightModel(cfg.HandlerHeight, cfg.MaxHeight, &m.obs)
	if cfg.Open {
		m.state = Open
		m.heights.setQuietly(cfg.MaxHeight)
	}
	m.anim = newAnimator(m.id, cfg.AnimationDuration, cfg.TickInterval)
	m.drag = NewDragHandler(cfg.FlickWindow, m.now)
	m.scroll = newScrollCoupler(m.id, cfg.ScrollSettle)
	return m
}

// newID takes a prefix from the zone manager when there is one, so ids never
// collide with other components marked by the same manager.
func (m *Model) newID() string {
	if m.zones != nil {
		return m.zones.NewPrefix()
	}
	return "panel_" + strconv.FormatInt(panelCounter.Add(1), 10) + "__"
}

// Subscribe registers an observer and returns a function that removes it.
func (m *Model) Subscribe(o Observer) (unsubscribe func()) {
	return m.obs.add(o)
}

func (m *Model) ID() string { return m.id }
func (m *Model) Config() Config { return m.cfg }
func (m *Model) State() State { return m.state }
func (m *Model) IsOpen() bool { return m.state == Open }
func (m *Model) Height() float64 { return m.heights.height }
func (m *Model) Progress() float64 { return m.heights.progress }
func (m *Model) Animating() bool { return m.anim.animating() }
func (m *Model) Host() Host { return m.host }

// Rows is the height handed to the layout, in whole terminal rows.
func (m *Model) Rows() int {
	return int(math.Round(m.heights.height))
}

func (m *Model) geometry() Geometry {
	return Geometry{
		HandlerHeight: m.cfg.HandlerHeight,
		MaxHeight:     m.cfg.MaxHeight,
		Sensitivity:   m.cfg.Sensitivity,
	}
}

func (m *Model) resting(s State) float64 {
	if s == Open {
		return m.cfg.MaxHeight
	}
	return m.cfg.HandlerHeight
}

// Open animates the panel open.
func (m *Model) Open() tea.Cmd {
	return m.transition(Open)
}

// Close animates the panel closed.
func (m *Model) Close() tea.Cmd {
	return m.transition(Closed)
}

// Toggle animates towards the opposite state. During an animation it
// reverses the running transition.
func (m *Model) Toggle() tea.Cmd {
	return m.transition(m.toggleTarget())
}

func (m *Model) toggleTarget() State {
	if dir, ok := m.anim.heading(); ok {
		return dir.target().Opposite()
	}
	return m.state.Opposite()
}

func (m *Model) transition(target State) tea.Cmd {
	if dir, ok := m.anim.heading(); ok {
		if dir.target() == target {
			return nil
		}
		m.logger.Debug("superseding transition", "panel", m.id, "target", target)
	} else if m.state == target && m.heights.height == m.resting(target) {
		m.heights.setQuietly(m.resting(target))
		m.syncHost()
		return nil
	}

	run, cmd := m.anim.start(directionTo(target), m.heights.progress)
	m.logger.Debug("transition started",
		"panel", m.id,
		"run", run.id,
		"target", target,
		"start_progress", run.startProgress,
	)
	return cmd
}

// commit is the end of a completed transition: the state changes and is
// reported before the final height.
func (m *Model) commit(target State) {
	changed := m.state != target
	m.state = target
	if changed {
		m.heights.openStatus(target == Open)
	}
	if target == Open {
		m.heights.setProgress(1)
	} else {
		m.heights.setProgress(0)
	}
	m.logger.Debug("transition committed", "panel", m.id, "state", target, "changed", changed)
}

// settle resolves the released height into a transition.
func (m *Model) settle() tea.Cmd {
	target, needed := Resolve(m.geometry(), m.heights.height, m.state)
	m.logger.Debug("resolved release",
		"panel", m.id,
		"height", m.heights.height,
		"state", m.state,
		"target", target,
		"needed", needed,
	)
	if !needed {
		return nil
	}
	return m.transition(target)
}

// beginGesture stops whatever was animating so the gesture owns the height.
func (m *Model) beginGesture() {
	if m.anim.animating() {
		m.logger.Debug("gesture interrupts transition", "panel", m.id)
		m.anim.cancel()
	}
}

// Drag moves the panel by dy rows, positive downwards. The move is dropped
// when it would reach or cross either bound.
func (m *Model) Drag(dy float64) {
	if math.IsNaN(dy) || math.IsInf(dy, 0) {
		return
	}
	m.beginGesture()
	next := m.heights.height - dy
	if next > m.cfg.HandlerHeight && next < m.cfg.MaxHeight {
		m.heights.setHeight(next)
		m.syncHost()
	}
}

// EndDrag releases a drag. Any non-zero velocity toggles the panel;
// otherwise the release position decides.
func (m *Model) EndDrag(velocity float64) tea.Cmd {
	if !math.IsNaN(velocity) && math.Abs(velocity) > 0 {
		m.logger.Debug("flick release", "panel", m.id, "velocity", velocity)
		return m.Toggle()
	}
	return m.settle()
}

// Scroll feeds delta rows of wheel movement, negative towards the top, and
// returns the command that ends the gesture once the wheel goes quiet.
func (m *Model) Scroll(delta int) tea.Cmd {
	if delta == 0 {
		return nil
	}
	m.beginGesture()
	m.scroll.apply(m.host, m.heights, delta)
	m.syncHost()
	return m.scroll.settleCmd()
}

// EndScroll ends a wheel gesture immediately. It always resolves by
// position.
func (m *Model) EndScroll() tea.Cmd {
	m.scroll.abort()
	return m.settle()
}

func (m *Model) Init() tea.Cmd {
	m.syncHost()
	return m.host.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.panel != m.id {
			return m, nil
		}
		p, more, ok := m.anim.tick(msg.run)
		if !ok {
			return m, nil
		}
		m.heights.setProgress(p)
		m.syncHost()
		if more {
			return m, m.anim.tickCmd(msg.run)
		}
		return m, nil

	case doneMsg:
		if msg.panel != m.id {
			return m, nil
		}
		dir, ok := m.anim.finish(msg.run)
		if !ok {
			return m, nil
		}
		m.commit(dir.target())
		m.syncHost()
		return m, nil

	case scrollEndMsg:
		if msg.panel != m.id || !m.scroll.end(msg.seq) {
			return m, nil
		}
		return m, m.settle()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.syncHost()
		return m, nil

	case tea.MouseMsg:
		if cmd, handled := m.handleMouse(msg); handled {
			return m, cmd
		}
	}

	return m, m.updateHost(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	handled, ev := m.drag.HandleMouseEvent(msg, m.hitHandle)
	if handled {
		switch ev.Kind {
		case DragBegin:
			m.tapTarget = m.toggleTarget()
			m.beginGesture()
			m.scroll.abort()
		case DragMove:
			m.Drag(float64(ev.DeltaY))
		case DragEnd:
			return m.EndDrag(ev.Velocity), true
		case DragTap:
			return m.transition(m.tapTarget), true
		}
		return nil, true
	}

	if msg.Action != tea.MouseActionPress || !m.hitPanel(msg) {
		return nil, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.Scroll(-1), true
	case tea.MouseButtonWheelDown:
		return m.Scroll(1), true
	}
	return nil, false
}

func (m *Model) handleZoneID() string { return m.id + "handle" }
func (m *Model) panelZoneID() string { return m.id + "panel" }

func (m *Model) hitHandle(msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	return m.zones.Get(m.handleZoneID()).InBounds(msg)
}

func (m *Model) hitPanel(msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	return m.zones.Get(m.panelZoneID()).InBounds(msg)
}

func (m *Model) updateHost(msg tea.Msg) tea.Cmd {
	updated, cmd := m.host.Update(msg)
	if h, ok := updated.(Host); ok {
		m.host = h
	}
	return cmd
}

// handlerRows is the number of rows the handle occupies, at least one.
func (m *Model) handlerRows() int {
	return max(int(math.Round(m.cfg.HandlerHeight)), 1)
}

// bodyRows is what is left for the host below the handle.
func (m *Model) bodyRows() int {
	return max(m.Rows()-m.handlerRows(), 0)
}

// syncHost sends the host its new size whenever the body size changes.
func (m *Model) syncHost() {
	size := tea.WindowSizeMsg{Width: m.width, Height: m.bodyRows()}
	if size == m.hostSize {
		return
	}
	m.hostSize = size
	updated, _ := m.host.Update(size)
	if h, ok := updated.(Host); ok {
		m.host = h
	}
}
