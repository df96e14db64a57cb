package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/stickypanel/panel"
)

func TestListScrollOffsetClamps(t *testing.T) {
	l := newList(nil, "Fruits", sampleItems())
	l.Update(tea.WindowSizeMsg{Width: 30, Height: 6})

	// 20 items, 5 item rows below the header.
	l.SetScrollOffset(100)
	assert.Equal(t, 15, l.ScrollOffset())

	l.SetScrollOffset(-3)
	assert.Zero(t, l.ScrollOffset())
}

func TestListCursorKeepsVisible(t *testing.T) {
	l := newList(nil, "Fruits", sampleItems())
	l.Update(tea.WindowSizeMsg{Width: 30, Height: 4})

	for range 5 {
		l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	name, ok := l.selected()
	require.True(t, ok)
	assert.Equal(t, "Bergamot", name)
	assert.Equal(t, 3, l.ScrollOffset())

	view := ansi.Strip(l.View())
	assert.Contains(t, view, "Bergamot")
	assert.NotContains(t, view, "Grapefruit")
}

func TestListFilter(t *testing.T) {
	l := newList(nil, "Fruits", sampleItems())
	l.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, l.Filtering())
	for _, r := range "lime" {
		l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, l.Filtering())

	assert.Len(t, l.visible(), 3)
	name, ok := l.selected()
	require.True(t, ok)
	assert.Equal(t, "Finger Lime", name)
}

func TestListAsPanelHost(t *testing.T) {
	l := newList(nil, "Fruits", sampleItems())
	cfg := panel.DefaultConfig()
	cfg.HandlerHeight = 1
	cfg.MaxHeight = 8
	cfg.Open = true
	p := panel.New(l, cfg)
	p.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 7, l.height)

	p.Scroll(3)
	assert.Equal(t, 3, l.ScrollOffset())

	p.Scroll(-5)
	assert.Zero(t, l.ScrollOffset())
	assert.Equal(t, 10.0, p.Height())
}
