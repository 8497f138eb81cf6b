package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"rewindlife/src/universe"
)

// Modes of the presentation
const (
	ModeWindow      = "window"
	ModeTerminal    = "terminal"
	ModeInteractive = "interactive"
	ModeBatch       = "batch"
)

// Window defaults, 20px cells give the 80x60 grid
const (
	DefWindowWidth    = 1600
	DefWindowHeight   = 1200
	DefCellSize       = 20
	DefWindowInterval = 70 * time.Millisecond
	DefBatchMaxSteps  = 1000
)

var modes = map[string]bool{
	ModeWindow:      true,
	ModeTerminal:    true,
	ModeInteractive: true,
	ModeBatch:       true,
}

// Modes returns the mode names sorted
func Modes() []string {
	names := make([]string, 0, len(modes))
	for k := range modes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type Config struct {
	Mode     string           `yaml:"mode"`
	Universe universe.Options `yaml:"universe"`
	Window   WindowConfig     `yaml:"window"`
}

type WindowConfig struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	CellSize int           `yaml:"cell_size"`
	Interval time.Duration `yaml:"interval"`
}

// Overrides holds the command line values, zero values are left out
type Overrides struct {
	Mode     string
	Width    int
	Height   int
	Interval time.Duration
	MaxSteps int
	Seed     int64
	Template string
	CellSize int
}

func DefaultConfig(mode string) *Config {
	return &Config{
		Mode:     mode,
		Universe: universe.DefaultOptions(),
		Window: WindowConfig{
			Width:    DefWindowWidth,
			Height:   DefWindowHeight,
			CellSize: DefCellSize,
			Interval: DefWindowInterval,
		},
	}
}

func Load(path string, mode string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig(mode)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply copies the non-zero overrides into the config
// a template switches the random seeding off
// in the window mode the field size resizes the window, the grid is always derived from the window
func (c *Config) Apply(o Overrides) {
	if o.Mode != "" {
		c.Mode = o.Mode
	}
	if o.CellSize != 0 {
		c.Window.CellSize = o.CellSize
	}
	if c.Mode == ModeWindow {
		if o.Width != 0 {
			c.Window.Width = o.Width * c.Window.CellSize
		}
		if o.Height != 0 {
			c.Window.Height = o.Height * c.Window.CellSize
		}
	}
	if o.Width != 0 {
		c.Universe.Width = o.Width
	}
	if o.Height != 0 {
		c.Universe.Height = o.Height
	}
	if o.Interval != 0 {
		c.Universe.Interval = o.Interval
		c.Window.Interval = o.Interval
	}
	if o.MaxSteps != 0 {
		c.Universe.MaxSteps = o.MaxSteps
	}
	if o.Seed != 0 {
		c.Universe.Seed = o.Seed
	}
	if o.Template != "" {
		c.Universe.Template = o.Template
		c.Universe.Random = false
	}
}

// UniverseOptions returns the universe options for the configured mode
// the window mode derives the grid from the window size, the batch mode is always bounded
func (c *Config) UniverseOptions() (universe.Options, error) {
	if !modes[c.Mode] {
		return universe.Options{}, fmt.Errorf("unknown mode %q", c.Mode)
	}
	o := c.Universe
	switch c.Mode {
	case ModeWindow:
		if c.Window.CellSize <= 0 {
			return universe.Options{}, fmt.Errorf("%w: cell size %d", universe.ErrInvalidDimension, c.Window.CellSize)
		}
		o.Width = c.Window.Width / c.Window.CellSize
		o.Height = c.Window.Height / c.Window.CellSize
		o.Interval = c.Window.Interval
	case ModeBatch:
		if o.MaxSteps == 0 {
			o.MaxSteps = DefBatchMaxSteps
		}
	}
	return o, o.Validate()
}
