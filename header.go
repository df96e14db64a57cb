// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

type headerAction int

const (
	actionOpen headerAction = iota
	actionClose
	actionToggle
)

type header struct {
	id      string
	zones   *zone.Manager
	width   int
	title   string
	buttons []headerButton
}

type headerButton struct {
	label  string
	action headerAction
	active bool
}

func newHeader(zones *zone.Manager, title string) *header {
	return &header{
		id:    zoneID(zones),
		zones: zones,
		title: title,
		buttons: []headerButton{
			{label: "Open", action: actionOpen},
			{label: "Close", action: actionClose},
			{label: "Toggle", action: actionToggle},
		},
	}
}

func (h *header) setWidth(width int) {
	h.width = width
}

// setOpen highlights the button matching the panel state.
func (h *header) setOpen(open bool) {
	for i := range h.buttons {
		switch h.buttons[i].action {
		case actionOpen:
			h.buttons[i].active = open
		case actionClose:
			h.buttons[i].active = !open
		}
	}
}

// clicked returns the action of the button released on, if any.
func (h *header) clicked(msg tea.MouseMsg) (headerAction, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || h.zones == nil {
		return 0, false
	}
	for i, b := range h.buttons {
		if h.zones.Get(h.getButtonID(i)).InBounds(msg) {
			return b.action, true
		}
	}
	return 0, false
}

// View lays the title out on the left and the buttons on the right. The title
// is cut to whatever the buttons leave.
func (h *header) View() string {
	buttons := make([]string, len(h.buttons))
	for i, b := range h.buttons {
		style := headerButtonStyle
		if b.active {
			style = headerButtonActiveStyle
		}
		buttons[i] = style.Render(b.label)
		if h.zones != nil {
			buttons[i] = h.zones.Mark(h.getButtonID(i), buttons[i])
		}
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	title := ""
	if room := h.width - lipgloss.Width(right); room > 1 {
		title = titleStyle.Width(room).Render(ansi.Truncate(h.title, room-1, "…"))
	}
	return headerStyle.Width(h.width).MaxWidth(h.width).Render(title + right)
}

func (h *header) getButtonID(index int) string {
	return h.id + "button_" + strconv.Itoa(index)
}
