package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	rows := m.Rows()
	if rows <= 0 {
		return ""
	}

	handle := m.renderHandle(min(rows, m.handlerRows()))
	if m.zones != nil {
		handle = m.zones.Mark(m.handleZoneID(), handle)
	}

	out := handle
	if body := m.bodyRows(); body > 0 {
		style := m.styles.Body.Height(body).MaxHeight(body)
		if m.width > 0 {
			style = style.Width(m.width).MaxWidth(m.width)
		}
		out = lipgloss.JoinVertical(lipgloss.Left, handle, style.Render(m.host.View()))
	}

	if m.zones != nil {
		return m.zones.Mark(m.panelZoneID(), out)
	}
	return out
}

// renderHandle draws the grip centred on the first of n rows.
func (m *Model) renderHandle(n int) string {
	style := m.styles.Handle
	if m.drag.IsDragging() || m.anim.animating() {
		style = m.styles.HandleActive
	}
	if m.width > 0 {
		style = style.Width(m.width)
	}

	lines := make([]string, n)
	lines[0] = m.styles.Grip
	return style.Render(strings.Join(lines, "\n"))
}
