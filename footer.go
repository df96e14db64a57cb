// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

// panelStatus is what the footer shows about the panel.
type panelStatus struct {
	open      bool
	animating bool
	height    float64
	progress  float64
	mouse     bool
	message   string
}

type footer struct {
	width int
	help  help.Model
}

func newFooter() *footer {
	return &footer{help: help.New()}
}

func (f *footer) setWidth(width int) {
	f.width = width
	f.help.Width = width
}

func (f *footer) View(s panelStatus) string {
	state := "closed"
	if s.open {
		state = "open"
	}
	if s.animating {
		state += "*"
	}
	mouseInfo := "mouse: off"
	if s.mouse {
		mouseInfo = "mouse: on"
	}
	info := fmt.Sprintf("%s | height %.1f | progress %3.0f%% | %s", state, s.height, s.progress*100, mouseInfo)
	if s.message != "" {
		info += " | " + s.message
	}

	status := footerStyle.Width(f.width).Render(debugStyle.Render(info))
	return lipgloss.JoinVertical(lipgloss.Left, status, f.help.View(keys))
}
