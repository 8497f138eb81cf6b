package universe

import (
	"context"
	"fmt"
	"time"
)

// Options represents the Universe's configurable options
type Options struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Interval time.Duration `yaml:"interval"`
	MaxSteps int           `yaml:"max_steps"` // 0 means no limit
	Random   bool          `yaml:"random"`
	Seed     int64         `yaml:"seed"` // 0 means seeding with the current time
	Template string        `yaml:"template,omitempty"`
}

// Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

// Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
// Start runs the presentation loop and blocks until the user quits or ctx is done
type Viewer interface {
	Refresh()
	Register(u *Universe)
	Start(ctx context.Context) error
}

// RunningState is the universe running status at the concrete moment
type RunningState int

// default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 0
	DefWidth              = 40
	DefHeight             = 20
	PopulationWindow      = 120
)

const (
	RunningStateRun RunningState = iota
	RunningStatePaused
	RunningStateDrawing
	RunningStateFinished
)

var runningStateNames = map[RunningState]string{
	RunningStateRun:      "running",
	RunningStatePaused:   "paused",
	RunningStateDrawing:  "drawing",
	RunningStateFinished: "finished",
}

func (s RunningState) String() string {
	if n, ok := runningStateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("RunningState(%d)", int(s))
}

// DefaultOptions returns the default universe configuration
func DefaultOptions() Options {
	return Options{
		Width:    DefWidth,
		Height:   DefHeight,
		Interval: DefSimulationInterval,
		MaxSteps: DefMaxSteps,
		Random:   true,
	}
}

// Validate checks the options before a universe is created from them
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %d x %d", ErrInvalidDimension, o.Width, o.Height)
	}
	if o.Interval < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, o.Interval)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSteps, o.MaxSteps)
	}
	return nil
}
