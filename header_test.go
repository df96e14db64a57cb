package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderViewFitsWidth(t *testing.T) {
	h := newHeader(nil, "Sticky Panel Demo")

	h.setWidth(80)
	view := h.View()
	assert.Equal(t, 1, lipgloss.Height(view))
	assert.Equal(t, 80, lipgloss.Width(view))
	assert.Contains(t, ansi.Strip(view), "Sticky Panel Demo")

	h.setWidth(30)
	view = h.View()
	assert.Equal(t, 30, lipgloss.Width(view))
	assert.Contains(t, ansi.Strip(view), "S…")
	assert.Contains(t, ansi.Strip(view), "Toggle")
}

func TestHeaderButtonClick(t *testing.T) {
	zm := zone.New()
	defer zm.Close()

	h := newHeader(zm, "Demo")
	h.setWidth(60)
	zm.Scan(h.View())

	id := h.getButtonID(2)
	require.Eventually(t, func() bool {
		return !zm.Get(id).IsZero()
	}, time.Second, time.Millisecond)

	z := zm.Get(id)
	action, ok := h.clicked(tea.MouseMsg{
		X:      z.StartX + 2,
		Y:      z.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	require.True(t, ok)
	assert.Equal(t, actionToggle, action)

	_, ok = h.clicked(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, ok)

	// Presses are not clicks.
	_, ok = h.clicked(tea.MouseMsg{X: z.StartX + 2, Y: z.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, ok)
}

func TestHeaderHighlightsState(t *testing.T) {
	h := newHeader(nil, "Demo")
	h.setOpen(true)
	assert.True(t, h.buttons[0].active)
	assert.False(t, h.buttons[1].active)
	assert.False(t, h.buttons[2].active)

	h.setOpen(false)
	assert.False(t, h.buttons[0].active)
	assert.True(t, h.buttons[1].active)
}
