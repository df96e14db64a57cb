package panel

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Host is the content hosted inside the panel. It is laid out below the
// handle and exposes the vertical scroll offset the scroll coupler reads and
// resets.
//
// The coupler assumes it is the only writer of the offset while a wheel
// gesture is in progress.
type Host interface {
	tea.Model
	ScrollOffset() int
	SetScrollOffset(offset int)
}

// blankHost is the fallback content of a panel constructed without a host.
type blankHost struct {
	offset int
}

func (h *blankHost) Init() tea.Cmd { return nil }
func (h *blankHost) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }
func (h *blankHost) View() string { return "" }
func (h *blankHost) ScrollOffset() int { return h.offset }

func (h *blankHost) SetScrollOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	h.offset = offset
}

// ViewportHost hosts scrollable text in a bubbles viewport.
type ViewportHost struct {
	Viewport viewport.Model
}

// NewViewportHost creates a host showing content.
func NewViewportHost(content string) *ViewportHost {
	vp := viewport.New(0, 0)
	// Wheel events belong to the panel's scroll coupler.
	vp.MouseWheelEnabled = false
	vp.SetContent(content)
	return &ViewportHost{Viewport: vp}
}

func (h *ViewportHost) Init() tea.Cmd {
	return h.Viewport.Init()
}

func (h *ViewportHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.Viewport.Width = msg.Width
		h.Viewport.Height = msg.Height
		// Re-clamp the offset to the new height.
		h.Viewport.SetYOffset(h.Viewport.YOffset)
		return h, nil
	}
	var cmd tea.Cmd
	h.Viewport, cmd = h.Viewport.Update(msg)
	return h, cmd
}

func (h *ViewportHost) View() string {
	return h.Viewport.View()
}

// SetContent replaces the viewport text.
func (h *ViewportHost) SetContent(s string) {
	h.Viewport.SetContent(s)
}

func (h *ViewportHost) ScrollOffset() int {
	return h.Viewport.YOffset
}

func (h *ViewportHost) SetScrollOffset(offset int) {
	h.Viewport.SetYOffset(offset)
}
