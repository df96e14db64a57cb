// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	listHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Render
	listItemStyle   = lipgloss.NewStyle().PaddingLeft(2).Render
	listCursorStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Background(subtle).
			Render
	checkMark = lipgloss.NewStyle().SetString("✓").
			Foreground(special).
			PaddingRight(1).
			String()

	listDoneStyle = func(s string) string {
		return checkMark + lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"}).
			Render(s)
	}
)

type listItem struct {
	name string
	done bool
}

// copiedMsg reports the result of copying an item to the clipboard.
type copiedMsg struct {
	text string
	err  error
}

// list is the scrollable content hosted inside the panel. Its scroll offset
// is shared with the panel's wheel handling.
type list struct {
	id     string
	zones  *zone.Manager
	width  int
	height int
	title  string
	items  []listItem
	cursor int // index into visible()
	offset int
	filter textinput.Model
}

func newList(zones *zone.Manager, title string, items []listItem) *list {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/ "
	ti.CharLimit = 32
	ti.Width = 20
	return &list{
		id:     zoneID(zones),
		zones:  zones,
		title:  title,
		items:  items,
		filter: ti,
	}
}

func (m *list) Init() tea.Cmd {
	return nil
}

func (m *list) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.SetScrollOffset(m.offset)
		m.ensureCursorVisible()

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m, m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, keys.Filter):
			return m, m.filter.Focus()
		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, keys.Copy):
			if name, ok := m.selected(); ok {
				return m, copyItem(name)
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.zones == nil {
			return m, nil
		}

		for i := range m.items {
			// Check each item to see if it's in bounds.
			if m.zones.Get(m.id + m.items[i].name).InBounds(msg) {
				m.items[i].done = !m.items[i].done
				break
			}
		}
	}
	return m, nil
}

func (m *list) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.filter.Blur()
		return nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.offset = 0
	}
	return cmd
}

// Filtering reports whether key presses go to the filter input.
func (m *list) Filtering() bool {
	return m.filter.Focused()
}

func (m *list) visible() []int {
	query := strings.ToLower(m.filter.Value())
	var out []int
	for i, item := range m.items {
		if query == "" || strings.Contains(strings.ToLower(item.name), query) {
			out = append(out, i)
		}
	}
	return out
}

func (m *list) selected() (string, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return "", false
	}
	return m.items[vis[m.cursor]].name, true
}

// itemRows is the number of item lines below the header.
func (m *list) itemRows() int {
	return max(m.height-1, 0)
}

func (m *list) maxOffset() int {
	return max(len(m.visible())-m.itemRows(), 0)
}

func (m *list) ScrollOffset() int {
	return m.offset
}

func (m *list) SetScrollOffset(offset int) {
	m.offset = min(max(offset, 0), m.maxOffset())
}

func (m *list) moveCursor(delta int) {
	n := len(m.visible())
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.ensureCursorVisible()
}

func (m *list) ensureCursorVisible() {
	rows := m.itemRows()
	if rows == 0 {
		return
	}
	if m.cursor < m.offset {
		m.SetScrollOffset(m.cursor)
	} else if m.cursor >= m.offset+rows {
		m.SetScrollOffset(m.cursor - rows + 1)
	}
}

func (m *list) View() string {
	if m.height <= 0 {
		return ""
	}
	header := listHeader(m.title)
	if m.filter.Focused() || m.filter.Value() != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", m.filter.View())
	}
	out := []string{header}

	vis := m.visible()
	end := min(m.offset+m.itemRows(), len(vis))
	for pos := m.offset; pos < end; pos++ {
		item := m.items[vis[pos]]
		var line string
		switch {
		case item.done:
			line = listItemStyle(listDoneStyle(item.name))
		case pos == m.cursor:
			line = listCursorStyle(item.name)
		default:
			line = listItemStyle(item.name)
		}
		if m.zones != nil {
			line = m.zones.Mark(m.id+item.name, line)
		}
		out = append(out, line)
	}

	style := lipgloss.NewStyle().Height(m.height).MaxHeight(m.height)
	if m.width > 0 {
		style = style.Width(m.width).MaxWidth(m.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}

func copyItem(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboard.WriteAll(text)}
	}
}
