package view

import (
	"context"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"rewindlife/src/universe"
)

const clearScreen = "\033[2J\033[H"

// Terminal prints the whole field after every change, clearing the screen first
type Terminal struct {
	u  *universe.Universe
	w  io.Writer
	au aurora.Aurora
}

func NewTerminal(w io.Writer, colors bool) *Terminal {
	return &Terminal{w: w, au: aurora.NewAurora(colors)}
}

func (t *Terminal) Register(u *universe.Universe) {
	t.u = u
}

func (t *Terminal) Refresh() {
	if t.u == nil {
		return
	}
	st := t.u.Status()
	fmt.Fprint(t.w, clearScreen, t.u.Game().String())
	fmt.Fprintf(t.w, " %s: %v  %s: %v\n",
		t.au.Green("Step"), st.IterationNum,
		t.au.Green("Live Cells"), st.LiveCells)
}

// Start runs the universe until ctx is done
func (t *Terminal) Start(ctx context.Context) error {
	return t.u.Run(ctx)
}
