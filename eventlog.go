package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileylov/stickypanel/panel"
)

// eventLog records panel notifications in a table, newest last.
type eventLog struct {
	table table.Model
	rows  []table.Row
	limit int
	start time.Time
	now   func() time.Time
}

func newEventLog(limit int, now func() time.Time) *eventLog {
	if now == nil {
		now = time.Now
	}
	columns := []table.Column{
		{Title: "t+ms", Width: 8},
		{Title: "Event", Width: 12},
		{Title: "Value", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &eventLog{
		table: t,
		limit: limit,
		start: now(),
		now:   now,
	}
}

var _ panel.Observer = (*eventLog)(nil)

func (l *eventLog) OpenStatusChanged(open bool) {
	status := "closed"
	if open {
		status = "open"
	}
	l.add("status", status)
}

func (l *eventLog) ProgressChanged(p float64) {
	l.add("progress", fmt.Sprintf("%.3f", p))
}

func (l *eventLog) HeightChanged(h float64) {
	l.add("height", fmt.Sprintf("%.2f", h))
}

func (l *eventLog) add(event, value string) {
	elapsed := l.now().Sub(l.start).Milliseconds()
	l.rows = append(l.rows, table.Row{strconv.FormatInt(elapsed, 10), event, value})
	if l.limit > 0 && len(l.rows) > l.limit {
		l.rows = l.rows[len(l.rows)-l.limit:]
	}
	l.table.SetRows(l.rows)
	l.table.GotoBottom()
}

func (l *eventLog) setSize(width, height int) {
	l.table.SetWidth(width)
	// Header and its border take two rows.
	l.table.SetHeight(max(height-2, 1))
}

func (l *eventLog) View() string {
	return l.table.View()
}
