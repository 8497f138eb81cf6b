package view

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/logrusorgru/aurora"

	"rewindlife/src/universe"
)

// ConsoleOut is the headless viewer: it reports the progress of a bounded run and prints the summary at the end
type ConsoleOut struct {
	u         *universe.Universe
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
	reported  int
	finished  bool
}

func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), reported: -1}
}

func (c *ConsoleOut) Refresh() {
	if c.u == nil || c.finished {
		return
	}
	st := c.u.Status()
	if st.RunningMode == universe.RunningStateFinished {
		c.finished = true
		c.printReport(st)
		return
	}
	if st.IterationNum%10 == 0 && st.IterationNum != c.reported {
		c.reported = st.IterationNum
		fmt.Fprintf(c.w, "  Iterations done: %v\n", st.IterationNum)
	}
}

func (c *ConsoleOut) Register(u *universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
		"Seeding":        seeding(o),
	})
}

// Start runs the universe until it is finished or ctx is done
func (c *ConsoleOut) Start(ctx context.Context) error {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, c.au.Bold("\n\"The Life\" game simulation started..."))
	return c.u.Run(ctx)
}

func (c *ConsoleOut) printReport(st universe.Status) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Fprintln(c.w, c.au.Green("\nFinished:"))
	c.printHashData(map[string]interface{}{
		"Last iteration": st.IterationNum,
		"Total time":     totalTime,
		"Live cells":     st.LiveCells,
	})
	if p := c.u.Population(); len(p) > 1 {
		fmt.Fprintln(c.w)
		fmt.Fprintln(c.w, asciigraph.Plot(p,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Precision(0),
			asciigraph.Caption(fmt.Sprintf("live cells, last %d generations", len(p)))))
	}
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Cyan(propName), d[propName])
	}
}

func seeding(o universe.Options) string {
	switch {
	case o.Template != "":
		return "template " + o.Template
	case o.Random && o.Seed != 0:
		return fmt.Sprintf("random, seed %d", o.Seed)
	case o.Random:
		return "random"
	}
	return "empty"
}
