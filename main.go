// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/pflag"

	"github.com/rileylov/stickypanel/internal/config"
	"github.com/rileylov/stickypanel/panel"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

const (
	headerRows = 1
	footerRows = 2
	logLimit   = 200
)

type model struct {
	height    int
	width     int
	zones     *zone.Manager
	header    *header
	footer    *footer
	events    *eventLog
	panel     *panel.Model
	list      *list // nil when hosting a viewport
	maxHeight float64
	message   string
}

func (m model) Init() tea.Cmd {
	return m.panel.Init()
}

func (m model) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.isInitialized() {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m, m.forward(msg)
		}
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.resize()
	case tea.MouseMsg:
		if action, ok := m.header.clicked(msg); ok {
			cmd = m.apply(action)
		} else {
			cmd = m.forward(msg)
		}
	case copiedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Couldn't write to clipboard: %v", msg.err)
		} else {
			m.message = "copied " + msg.text
		}
	default:
		cmd = m.forward(msg)
	}

	m.header.setOpen(m.panel.IsOpen())
	m.events.setSize(m.width, m.logRows())
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.list != nil && m.list.Filtering() {
		return m.forward(msg)
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Mouse):
		// Toggle mouse event tracking.
		m.zones.SetEnabled(!m.zones.Enabled())
		return nil
	case key.Matches(msg, keys.Open):
		return m.apply(actionOpen)
	case key.Matches(msg, keys.Close):
		return m.apply(actionClose)
	case key.Matches(msg, keys.Toggle):
		return m.apply(actionToggle)
	}
	return m.forward(msg)
}

func (m *model) apply(action headerAction) tea.Cmd {
	switch action {
	case actionOpen:
		return m.panel.Open()
	case actionClose:
		return m.panel.Close()
	default:
		return m.panel.Toggle()
	}
}

func (m *model) forward(msg tea.Msg) tea.Cmd {
	_, cmd := m.panel.Update(msg)
	return cmd
}

// resize fits the panel's max height into what the header and footer leave.
func (m *model) resize() {
	m.header.setWidth(m.width)
	m.footer.setWidth(m.width)

	available := float64(m.height - headerRows - footerRows)
	handler := m.panel.Config().HandlerHeight
	m.panel.SetMaxHeight(max(min(m.maxHeight, available), handler))
	m.panel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

func (m model) logRows() int {
	return max(m.height-headerRows-footerRows-m.panel.Rows(), 0)
}

func (m model) View() string {
	if !m.isInitialized() {
		return ""
	}
	parts := []string{m.header.View()}
	if rows := m.logRows(); rows > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Height(rows).
			MaxHeight(rows).
			MaxWidth(m.width).
			Render(m.events.View()))
	}
	if v := m.panel.View(); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, m.footer.View(panelStatus{
		open:      m.panel.IsOpen(),
		animating: m.panel.Animating(),
		height:    m.panel.Height(),
		progress:  m.panel.Progress(),
		mouse:     m.zones.Enabled(),
		message:   m.message,
	}))
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// zoneID returns a fresh marker prefix from zones, or "" when the component
// is not marked.
func zoneID(zones *zone.Manager) string {
	if zones == nil {
		return ""
	}
	return zones.NewPrefix()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, hostKind, logFile string
	var debug, open bool

	flagSet := pflag.NewFlagSet("stickypanel", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a TOML config file")
	flagSet.StringVar(&hostKind, "host", "", `panel content: "list" or "viewport"`)
	flagSet.StringVar(&logFile, "log-file", "", "write log records to this file")
	flagSet.BoolVar(&debug, "debug", false, "log at debug level")
	flagSet.BoolVar(&open, "open", false, "start with the panel open")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("host") {
		cfg.Demo.Host = hostKind
	}
	if flagSet.Changed("log-file") {
		cfg.Demo.LogFile = logFile
	}
	if flagSet.Changed("debug") {
		cfg.Demo.Debug = debug
	}
	if flagSet.Changed("open") {
		cfg.Panel.Open = open
	}

	panelCfg, err := cfg.ToPanel()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Demo)
	if err != nil {
		return err
	}
	defer closeLog()

	zones := zone.New()
	defer zones.Close()

	var host panel.Host
	var items *list
	switch cfg.Demo.Host {
	case "", "list":
		items = newList(zones, "Citrus Fruits to Try", sampleItems())
		host = items
	case "viewport":
		host = panel.NewViewportHost(sampleText())
	default:
		return fmt.Errorf("unknown host %q (want list or viewport)", cfg.Demo.Host)
	}

	p := panel.New(host, panelCfg, panel.WithLogger(logger), panel.WithZoneManager(zones))
	events := newEventLog(logLimit, nil)
	p.Subscribe(events)
	p.Subscribe(panel.ObserverFuncs{OnOpenStatus: func(open bool) {
		logger.Info("panel status changed", "open", open)
	}})

	m := model{
		zones:     zones,
		header:    newHeader(zones, "Sticky Panel Demo"),
		footer:    newFooter(),
		events:    events,
		panel:     p,
		list:      items,
		maxHeight: panelCfg.MaxHeight,
	}

	logger.Info("starting", "host", cfg.Demo.Host, "max_height", panelCfg.MaxHeight, "sensitivity", panelCfg.Sensitivity)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

func newLogger(cfg config.DemoConfig) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `stickypanel: a sliding panel that snaps open or closed.

Drag the handle, click it, or use the mouse wheel over the panel.

Usage:
  stickypanel [flags]

Flags:
%s`, flagSet.FlagUsages())
}

func sampleItems() []listItem {
	names := []string{
		"Grapefruit", "Yuzu", "Citron", "Kumquat", "Pomelo",
		"Bergamot", "Calamansi", "Finger Lime", "Key Lime", "Mandarin",
		"Meyer Lemon", "Blood Orange", "Sudachi", "Tangelo", "Ugli Fruit",
		"Clementine", "Kaffir Lime", "Satsuma", "Buddha's Hand", "Ponkan",
	}
	items := make([]listItem, len(names))
	for i, n := range names {
		items[i] = listItem{name: n, done: i%4 == 0}
	}
	return items
}

func sampleText() string {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "%02d  Scroll past the top to pull the panel up, scroll down to push it back.\n", i)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
