package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"rewindlife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the interactive terminal viewer
// all universe calls are made on the gocui main loop goroutine: key handlers run there and ticks are posted with Gui.Update
type ConsoleUI struct {
	u          *universe.Universe
	g          *gocui.Gui
	k          []keyBindings
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStatePaused:   aurora.Colorize("paused", aurora.BlueFg).String(),
		universe.RunningStateDrawing:  aurora.Colorize("drawing", aurora.MagentaFg).String(),
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewConsoleUI() (*ConsoleUI, error) {
	t := ConsoleUI{
		liveFiller: aurora.Green("██").BgBrightGreen().String(),
		deadFiller: "░░",
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	t.g = g
	t.g.Mouse = true

	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeyEsc, "ESC", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/Resume", t.cmdPause, ""},
		{gocui.KeyArrowRight, "→", "Next step (paused)", t.cmdStepForward, ""},
		{gocui.KeyArrowLeft, "←", "Step back (paused)", t.cmdStepBackward, ""},
		{'r', "R", "Reseed", t.cmdReseed, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{gocui.MouseLeft, "MOUSE", "Draw the cell", t.cmdMouseClick, "battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("keybinding %s: %w", kb.name, err)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(u *universe.Universe) {
	t.u = u
}

// Start runs the gocui main loop until the user quits or ctx is done
func (t *ConsoleUI) Start(ctx context.Context) error {
	defer t.g.Close()
	done := make(chan struct{})
	defer close(done)
	go t.tick(ctx, done)

	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// tick posts one universe tick per interval to the main loop
func (t *ConsoleUI) tick(ctx context.Context, done chan struct{}) {
	interval := t.u.Options().Interval
	if interval <= 0 {
		interval = universe.DefSimulationInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(g *gocui.Gui) error {
				t.u.Quit()
				return gocui.ErrQuit
			})
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.u.Tick()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderStatus()
}

// renderField queues the field redraw, it is called off the main loop
func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("battlefield"); e == nil {
			t.drawField(v)
		}
		return nil
	})
}

// drawField must run on the main loop
func (t *ConsoleUI) drawField(v *gocui.View) {
	// the entire field is redrawing at once
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, fieldText(t.u.Game(), maxW/2, maxH, t.liveFiller, t.deadFiller))
}

// fieldText renders the game into cols x rows cells of two columns each
// a field larger than the view is cropped and the last row carries the warning
func fieldText(game *universe.Game, cols int, rows int, live string, dead string) string {
	crop := game.Width() > cols || game.Height() > rows

	var b bytes.Buffer
	for i := 0; i < game.Height(); i++ {
		// discard the data outside the view area
		if i >= rows {
			break
		}
		if i != 0 {
			b.WriteByte('\n')
		}
		if crop && i == (rows-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		for j := 0; j < game.Width() && j < cols; j++ {
			if game.Cell(i, j).State() {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		s := t.u.Status()
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		c := t.u.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			if c.MaxSteps > 0 {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			} else {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "unlimited"))
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Seeding", "%v", seeding(c)))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	if v, err := g.View("battlefield"); err == nil {
		t.drawField(v)
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	t.u.Quit()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.u.TogglePause()
	return nil
}

func (t *ConsoleUI) cmdStepForward(_ *gocui.View) error {
	t.u.StepForward()
	return nil
}

func (t *ConsoleUI) cmdStepBackward(_ *gocui.View) error {
	t.u.StepBackward()
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	t.u.Reseed()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Clear()
	return nil
}

// cmdMouseClick paints the clicked cell, every cell takes two columns
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	t.u.Paint(cy+oy, (cx+ox)/2)
	return nil
}
