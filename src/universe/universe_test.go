package universe

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingViewer struct {
	u        *Universe
	refreshs int
}

func (v *countingViewer) Refresh()             { v.refreshs++ }
func (v *countingViewer) Register(u *Universe) { v.u = u }
func (v *countingViewer) Start(ctx context.Context) error {
	return v.u.Run(ctx)
}

func newTestUniverse(t *testing.T, mutate func(o *Options)) *Universe {
	t.Helper()
	o := DefaultOptions()
	o.Width = 20
	o.Height = 20
	o.Interval = 0
	o.Seed = 1
	if mutate != nil {
		mutate(&o)
	}
	u, err := NewUniverse(&o)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	return u
}

func TestNewUniverse_RandomAdvancesOnce(t *testing.T) {
	u := newTestUniverse(t, nil)
	s := u.Status()
	if s.IterationNum != 1 {
		t.Fatalf("expected one generation after construction, got %d", s.IterationNum)
	}
	if s.LiveCells != u.Game().Alive() {
		t.Fatalf("status alive %d, game alive %d", s.LiveCells, u.Game().Alive())
	}
	if s.RunningMode != RunningStateRun {
		t.Fatalf("expected running, got %v", s.RunningMode)
	}
	if len(u.Population()) != 1 {
		t.Fatalf("expected one population sample, got %d", len(u.Population()))
	}
}

func TestNewUniverse_Defaults(t *testing.T) {
	u, err := NewUniverse(nil)
	if err != nil {
		t.Fatal(err)
	}
	o := u.Options()
	if o.Width != DefWidth || o.Height != DefHeight || o.Interval != DefSimulationInterval {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestNewUniverse_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
		err    error
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, ErrInvalidDimension},
		{"negative height", func(o *Options) { o.Height = -1 }, ErrInvalidDimension},
		{"negative interval", func(o *Options) { o.Interval = -time.Second }, ErrInvalidInterval},
		{"negative max steps", func(o *Options) { o.MaxSteps = -1 }, ErrInvalidMaxSteps},
		{"unknown template", func(o *Options) { o.Template = "spaceship" }, ErrUnknownTemplate},
	}
	for _, tt := range tests {
		o := DefaultOptions()
		tt.mutate(&o)
		if _, err := NewUniverse(&o); !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v, expected %v", tt.name, err, tt.err)
		}
	}
}

func TestNewUniverse_Template(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.Template = "glider" })
	s := u.Status()
	if s.IterationNum != 0 || s.LiveCells != 5 {
		t.Fatalf("expected the untouched glider, got %+v", s)
	}
	for i := 0; i < 8; i++ {
		u.Tick()
		if u.Status().LiveCells != 5 {
			t.Fatalf("tick %d: glider population %d", i, u.Status().LiveCells)
		}
	}
	if u.Status().IterationNum != 8 {
		t.Fatalf("expected 8 generations, got %d", u.Status().IterationNum)
	}
}

func TestUniverse_AddTemplate(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.Random = false })
	u.AddTemplate(Template{Name: "dot", Coordinates: [][]int{{0, 0}}})
	if err := u.SettleTemplate("dot"); err != nil {
		t.Fatal(err)
	}
	if !u.Game().Cell(0, 0).State() || u.Status().LiveCells != 1 {
		t.Fatal("template was not settled")
	}
	if err := u.SettleTemplate("missing"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestUniverse_Pause(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.Template = "blinker" })

	u.StepForward()
	if u.Status().IterationNum != 0 {
		t.Fatal("StepForward should be ignored while running")
	}

	u.TogglePause()
	if !u.Paused() || u.Status().RunningMode != RunningStatePaused {
		t.Fatal("expected paused")
	}
	before := u.Game().String()
	u.Tick()
	if u.Status().IterationNum != 0 {
		t.Fatal("Tick should not advance while paused")
	}

	u.StepForward()
	if u.Status().IterationNum != 1 || u.Game().String() == before {
		t.Fatal("StepForward should advance while paused")
	}
	u.StepBackward()
	if u.Status().IterationNum != 0 || u.Game().String() != before {
		t.Fatal("StepBackward should rewind while paused")
	}
	if u.Status().LiveCells != 3 {
		t.Fatalf("expected 3 live cells after rewind, got %d", u.Status().LiveCells)
	}
	u.StepBackward()
	if u.Status().IterationNum != 1 || u.Game().String() == before {
		t.Fatalf("a second rewind should restore generation 1, got %d", u.Status().IterationNum)
	}
	u.StepBackward()

	u.TogglePause()
	u.StepBackward()
	if u.Game().String() != before {
		t.Fatal("StepBackward should be ignored while running")
	}
	u.Tick()
	if u.Status().IterationNum != 1 {
		t.Fatal("Tick should advance after resume")
	}
}

func TestUniverse_Drawing(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.Random = false })

	u.DrawAt(0, 0)
	if u.Game().Cell(0, 0).State() {
		t.Fatal("DrawAt should be ignored outside the drawing mode")
	}

	u.BeginDraw(5, 5)
	if !u.Drawing() || u.Status().RunningMode != RunningStateDrawing {
		t.Fatal("expected drawing mode")
	}
	u.DrawAt(5, 6)
	u.DrawAt(5, 7)
	u.DrawAt(-1, 50)
	u.Tick()
	if u.Status().IterationNum != 0 {
		t.Fatal("Tick should not advance while drawing")
	}
	if u.Status().LiveCells != 3 {
		t.Fatalf("expected 3 drawn cells, got %d", u.Status().LiveCells)
	}

	u.EndDraw()
	u.Tick()
	// the horizontal line is a blinker
	if u.Status().IterationNum != 1 || u.Status().LiveCells != 3 || !u.Game().Cell(4, 6).State() {
		t.Fatalf("unexpected state after drawing %+v", u.Status())
	}

	u.Paint(0, 0)
	if u.Drawing() || !u.Game().Cell(0, 0).State() {
		t.Fatal("Paint should set the cell and leave the drawing mode")
	}
}

func TestUniverse_ReseedAndClear(t *testing.T) {
	u := newTestUniverse(t, nil)
	u.Reseed()
	if u.Status().IterationNum != 2 {
		t.Fatalf("Reseed should advance once, got generation %d", u.Status().IterationNum)
	}
	u.Clear()
	if u.Status().LiveCells != 0 || u.Game().Alive() != 0 {
		t.Fatal("expected empty universe after Clear")
	}
}

func TestUniverse_Quit(t *testing.T) {
	u := newTestUniverse(t, nil)
	u.Quit()
	if u.Running() || u.Status().RunningMode != RunningStateFinished {
		t.Fatal("expected finished")
	}
	gen := u.Status().IterationNum
	u.Tick()
	if u.Status().IterationNum != gen {
		t.Fatal("Tick should be ignored after Quit")
	}
}

func TestUniverse_RunMaxSteps(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.MaxSteps = 25 })
	v := &countingViewer{}
	u.RegisterViewer(v)
	if v.u != u {
		t.Fatal("viewer was not registered")
	}

	if err := v.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := u.Status()
	if s.IterationNum != 25 || s.RunningMode != RunningStateFinished {
		t.Fatalf("unexpected status %+v", s)
	}
	if v.refreshs < 25 {
		t.Fatalf("expected a refresh per generation, got %d", v.refreshs)
	}
	if len(u.Population()) != 25 {
		t.Fatalf("expected 25 population samples, got %d", len(u.Population()))
	}
}

func TestUniverse_RunCanceled(t *testing.T) {
	u := newTestUniverse(t, func(o *Options) { o.Interval = time.Hour })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := u.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestUniverse_PopulationWindow(t *testing.T) {
	u := newTestUniverse(t, nil)
	for i := 0; i < PopulationWindow*2; i++ {
		u.Tick()
	}
	p := u.Population()
	if len(p) != PopulationWindow {
		t.Fatalf("expected %d samples, got %d", PopulationWindow, len(p))
	}
	if p[len(p)-1] != float64(u.Status().LiveCells) {
		t.Fatal("the last sample should be the current population")
	}
}

func TestRunningState_String(t *testing.T) {
	if RunningStatePaused.String() != "paused" {
		t.Fatalf("got %q", RunningStatePaused.String())
	}
	if RunningState(42).String() != "RunningState(42)" {
		t.Fatalf("got %q", RunningState(42).String())
	}
}

func TestTemplates(t *testing.T) {
	tmpls := Templates()
	if len(tmpls) != len(builtinTemplates) {
		t.Fatalf("expected %d templates, got %d", len(builtinTemplates), len(tmpls))
	}
	for i := 1; i < len(tmpls); i++ {
		if tmpls[i-1].Name >= tmpls[i].Name {
			t.Fatal("templates should be sorted by name")
		}
	}
}
