package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rileylov/stickypanel/panel"
)

type Config struct {
	Panel PanelConfig `koanf:"panel"`
	Demo  DemoConfig  `koanf:"demo"`
}

// PanelConfig mirrors panel.Config with durations in milliseconds.
type PanelConfig struct {
	HandlerHeight  float64 `koanf:"handler_height"`
	MaxHeight      float64 `koanf:"max_height"`
	Sensitivity    float64 `koanf:"sensitivity"`
	AnimationMS    int     `koanf:"animation_ms"`
	TickMS         int     `koanf:"tick_ms"`
	FlickWindowMS  int     `koanf:"flick_window_ms"`
	ScrollSettleMS int     `koanf:"scroll_settle_ms"`
	Open           bool    `koanf:"open"`
}

// DemoConfig holds settings of the demo program.
type DemoConfig struct {
	Host    string `koanf:"host"`     // "list" or "viewport"
	LogFile string `koanf:"log_file"` // empty disables logging
	Debug   bool   `koanf:"debug"`
}

func defaults() *Config {
	d := panel.DefaultConfig()
	return &Config{
		Panel: PanelConfig{
			HandlerHeight:  d.HandlerHeight,
			MaxHeight:      d.MaxHeight,
			Sensitivity:    d.Sensitivity,
			AnimationMS:    int(d.AnimationDuration / time.Millisecond),
			TickMS:         int(d.TickInterval / time.Millisecond),
			FlickWindowMS:  int(d.FlickWindow / time.Millisecond),
			ScrollSettleMS: int(d.ScrollSettle / time.Millisecond),
			Open:           d.Open,
		},
		Demo: DemoConfig{Host: "list"},
	}
}

// Load reads the config. With an explicit path only that file is read and
// it must exist; otherwise the default locations are tried in order and
// missing files are skipped.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", p, err)
				}
			}
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Demo.LogFile = expandPath(cfg.Demo.LogFile)
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/stickypanel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stickypanel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ToPanel converts the file settings and validates them.
func (c *Config) ToPanel() (panel.Config, error) {
	p := c.Panel
	cfg := panel.Config{
		HandlerHeight:     p.HandlerHeight,
		MaxHeight:         p.MaxHeight,
		Sensitivity:       p.Sensitivity,
		AnimationDuration: time.Duration(p.AnimationMS) * time.Millisecond,
		TickInterval:      time.Duration(p.TickMS) * time.Millisecond,
		FlickWindow:       time.Duration(p.FlickWindowMS) * time.Millisecond,
		ScrollSettle:      time.Duration(p.ScrollSettleMS) * time.Millisecond,
		Open:              p.Open,
	}
	if err := cfg.Validate(); err != nil {
		return panel.Config{}, err
	}
	return cfg, nil
}
