// Package config handles configuration loading and validation for eventboard.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/eventboard/internal/core/grid"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/core/timeline"
)

// Source kinds.
const (
	SourceMock   = "mock"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Defaults applied to zero values.
const (
	DefaultMockCount = 300
	DefaultMockDelay = time.Second
	DefaultDebounce  = 250 * time.Millisecond
)

// Config holds the application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Grid     GridConfig     `yaml:"grid"`
	Timeline TimelineConfig `yaml:"timeline"`
	TUI      TUIConfig      `yaml:"tui"`
}

// SourceConfig selects and tunes the event data source.
type SourceConfig struct {
	Kind  string `yaml:"kind"`  // mock | file | sqlite
	Count int    `yaml:"count"` // mock only
	// Delay simulates latency for the mock source. Nil uses DefaultMockDelay;
	// an explicit 0s disables it.
	Delay    *time.Duration `yaml:"delay"`
	Seed     uint64         `yaml:"seed"`     // mock only, 0 = time based
	Path     string         `yaml:"path"`     // glob for file, database path for sqlite
	Watch    bool           `yaml:"watch"`    // file only
	Debounce time.Duration  `yaml:"debounce"` // file watch debounce
}

// GridConfig tunes the events table.
type GridConfig struct {
	PageSize      int      `yaml:"page_size"`
	HiddenColumns []string `yaml:"hidden_columns"`
}

// TimelineConfig tunes the day carousel.
type TimelineConfig struct {
	Window int `yaml:"window"`
}

// TUIConfig holds terminal UI preferences.
type TUIConfig struct {
	Theme      string `yaml:"theme"`
	PlainIcons bool   `yaml:"plain_icons"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	delay := DefaultMockDelay
	return Config{
		Source: SourceConfig{
			Kind:     SourceMock,
			Count:    DefaultMockCount,
			Delay:    &delay,
			Debounce: DefaultDebounce,
		},
		Grid: GridConfig{
			PageSize:      grid.DefaultPageSize,
			HiddenColumns: []string{},
		},
		Timeline: TimelineConfig{
			Window: timeline.DefaultWindow,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Source.Kind == "" {
		c.Source.Kind = defaults.Source.Kind
	}
	if c.Source.Count == 0 {
		c.Source.Count = defaults.Source.Count
	}
	if c.Source.Delay == nil {
		c.Source.Delay = defaults.Source.Delay
	}
	if c.Source.Debounce == 0 {
		c.Source.Debounce = defaults.Source.Debounce
	}
	if c.Grid.PageSize == 0 {
		c.Grid.PageSize = defaults.Grid.PageSize
	}
	if c.Timeline.Window == 0 {
		c.Timeline.Window = defaults.Timeline.Window
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// MockDelay returns the configured mock latency.
func (s SourceConfig) MockDelay() time.Duration {
	if s.Delay == nil {
		return DefaultMockDelay
	}
	return *s.Delay
}
