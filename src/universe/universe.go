package universe

import (
	"context"
	"fmt"
	"time"
)

// Universe is the simulation session: it owns the Game and the pause/draw/run flags the viewers drive
// it is not safe for concurrent use, all calls have to come from the goroutine running the presentation loop
type Universe struct {
	options    Options
	game       *Game
	status     Status
	running    bool
	paused     bool
	drawing    bool
	views      []Viewer
	templates  map[string]Template
	population []float64
}

// NewUniverse creates the Universe instance
// a universe seeded with random data is advanced once, so the first rendered frame already shows one step
func NewUniverse(o *Options) (*Universe, error) {
	if o == nil {
		d := DefaultOptions()
		o = &d
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	u := Universe{
		options:   *o,
		running:   true,
		templates: map[string]Template{},
	}
	for _, t := range builtinTemplates {
		u.templates[t.Name] = t
	}

	random := o.Random && o.Template == ""
	u.game = NewGame(o.Width, o.Height, random, newRand(o.Seed))

	if o.Template != "" {
		if err := u.SettleTemplate(o.Template); err != nil {
			return nil, err
		}
	} else if random {
		u.step()
	}
	return &u, nil
}

// AddTemplate adds the seeding template to the internal storage
// the universe can be populated with this template by call SettleTemplate
func (u *Universe) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

// SettleTemplate populates the universe with the seeding template
func (u *Universe) SettleTemplate(name string) error {
	tmpl, ok := u.templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	u.game.Settle(tmpl.Coordinates)
	u.syncStatus()
	return nil
}

// RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *Universe) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

// Game returns the engine, viewers use it read-only
func (u *Universe) Game() *Game {
	return u.game
}

// Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	s := u.status
	switch {
	case !u.running:
		s.RunningMode = RunningStateFinished
	case u.drawing:
		s.RunningMode = RunningStateDrawing
	case u.paused:
		s.RunningMode = RunningStatePaused
	default:
		s.RunningMode = RunningStateRun
	}
	return s
}

// Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

// Population returns the live cells count of the recent generations, oldest first
func (u *Universe) Population() []float64 {
	p := make([]float64, len(u.population))
	copy(p, u.population)
	return p
}

// Running reports whether the presentation loop should keep going
func (u *Universe) Running() bool { return u.running }

// Paused reports whether automatic advancing is suspended
func (u *Universe) Paused() bool { return u.paused }

// Drawing reports whether the user is drawing cells
func (u *Universe) Drawing() bool { return u.drawing }

// Tick is called once per frame, advances the universe unless it is paused or the user is drawing
func (u *Universe) Tick() {
	if !u.running || u.paused || u.drawing {
		return
	}
	u.step()
}

// TogglePause suspends or resumes automatic advancing
func (u *Universe) TogglePause() {
	u.paused = !u.paused
	u.refreshView()
}

// StepForward advances one generation, only while paused
func (u *Universe) StepForward() {
	if !u.paused || !u.running {
		return
	}
	u.step()
}

// StepBackward rewinds one generation, only while paused
func (u *Universe) StepBackward() {
	if !u.paused || !u.running {
		return
	}
	u.game.StepBack()
	u.syncStatus()
}

// Reseed settles the universe with random data and advances once
func (u *Universe) Reseed() {
	u.game.Randomize()
	u.step()
}

// Clear kills all cells
func (u *Universe) Clear() {
	u.game.Clear()
	u.syncStatus()
}

// BeginDraw makes the cell at row i, column j alive and switches to the drawing mode
func (u *Universe) BeginDraw(i int, j int) {
	u.drawing = true
	u.game.SetCell(i, j, true)
	u.syncStatus()
}

// DrawAt makes the cell at row i, column j alive while in the drawing mode
func (u *Universe) DrawAt(i int, j int) {
	if !u.drawing {
		return
	}
	u.game.SetCell(i, j, true)
	u.syncStatus()
}

// EndDraw leaves the drawing mode
func (u *Universe) EndDraw() {
	u.drawing = false
	u.refreshView()
}

// Paint draws the single cell, for viewers without the drag support
func (u *Universe) Paint(i int, j int) {
	u.BeginDraw(i, j)
	u.EndDraw()
}

// Quit stops the presentation loop
func (u *Universe) Quit() {
	u.running = false
	u.refreshView()
}

// Run is the fixed rate loop for the viewers without their own main loop
// it ticks, lets the viewers refresh and sleeps for the interval until Quit, MaxSteps or ctx cancellation
func (u *Universe) Run(ctx context.Context) error {
	u.refreshView()
	for u.running {
		u.Tick()
		if !u.running {
			break
		}
		if u.options.Interval <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(u.options.Interval):
		}
	}
	return nil
}

// step does the new one state calculation for entire universe
func (u *Universe) step() {
	start := time.Now()
	u.status.LiveCells = u.game.NextGeneration()
	u.status.IterationTime = time.Since(start)
	u.status.IterationNum = u.game.Generation()
	u.record()
	if u.options.MaxSteps > 0 && u.status.IterationNum >= u.options.MaxSteps {
		u.running = false
	}
	u.refreshView()
}

// syncStatus updates the status after the cells were changed outside of step
func (u *Universe) syncStatus() {
	u.status.LiveCells = u.game.Alive()
	u.status.IterationNum = u.game.Generation()
	u.refreshView()
}

// record appends the live cells count to the population window
func (u *Universe) record() {
	u.population = append(u.population, float64(u.status.LiveCells))
	if len(u.population) > PopulationWindow {
		n := copy(u.population, u.population[len(u.population)-PopulationWindow:])
		u.population = u.population[:n]
	}
}

// refreshView calls Refresh event for all registered views
func (u *Universe) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
