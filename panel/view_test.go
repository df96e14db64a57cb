package panel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestViewHeightFollowsRows(t *testing.T) {
	cfg := scrollConfig(false)
	cfg.HandlerHeight = 3
	m := New(NewViewportHost("alpha\nbeta\ngamma"), cfg)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 30})

	view := m.View()
	assert.Equal(t, 3, lipgloss.Height(view))
	assert.Contains(t, ansi.Strip(view), DefaultStyles().Grip)
	assert.NotContains(t, ansi.Strip(view), "alpha")

	m.Scroll(-4)
	view = m.View()
	assert.Equal(t, 7, lipgloss.Height(view))
	plain := ansi.Strip(view)
	assert.Contains(t, plain, "alpha")
	assert.Contains(t, plain, "gamma")
}

func TestViewClipsHostToBody(t *testing.T) {
	cfg := scrollConfig(true)
	m := New(NewViewportHost(longContent(40)), cfg)
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 30})

	view := m.View()
	assert.Equal(t, 10, lipgloss.Height(view))
	for _, line := range strings.Split(ansi.Strip(view), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12)
	}
}

func TestViewEmptyAtZeroHeight(t *testing.T) {
	cfg := testConfig()
	cfg.HandlerHeight = 0
	m := New(nil, cfg)
	assert.Empty(t, m.View())
}
