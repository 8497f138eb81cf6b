package universe

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	title      = "Game of Life"
	liveFiller = "██"
	deadFiller = "  "
)

// Game is the cellular automaton engine
// it owns the area and advances it in place: every cell keeps one bit of history,
// so the sweep needs no second generation buffer and can be rewound by one step
type Game struct {
	width      int
	height     int
	area       Area
	alive      int
	generation int
	// rewound is set while the area holds the rewound generation, undone stores the counter it came from
	rewound    bool
	undone     int
	rng        *rand.Rand
}

// NewGame creates the Game with width x height dead cells
// non-positive dimensions are clamped to 1, nil rng means a time seeded source
// if random is set the area is randomized right away
func NewGame(width int, height int, random bool, rng *rand.Rand) *Game {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if rng == nil {
		rng = newRand(0)
	}
	g := &Game{
		width:  width,
		height: height,
		area:   createArea(width, height),
		rng:    rng,
	}
	if random {
		g.Randomize()
	}
	return g
}

// newRand creates the PCG backed generator, zero seed means the current time
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Width returns the number of columns
func (g *Game) Width() int { return g.width }

// Height returns the number of rows
func (g *Game) Height() int { return g.height }

// Alive returns the count of live cells
func (g *Game) Alive() int { return g.alive }

// Generation returns the count of generations advanced since the creation
func (g *Game) Generation() int { return g.generation }

// Randomize gives every cell an independent random state
// the states are applied through SetCell so each cell records its previous state
func (g *Game) Randomize() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			g.SetCell(i, j, g.rng.IntN(2) == 1)
		}
	}
}

// Clear kills every live cell, history is kept
func (g *Game) Clear() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if g.area.Entities[i][j].state {
				g.SetCell(i, j, false)
			}
		}
	}
}

// Settle makes the cells alive at the given [x, y] coordinates
// coordinates outside the area are skipped
func (g *Game) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		g.SetCell(v[1], v[0], true)
	}
}

// countLiving counts the live neighbours of the cell (i, j) during the sweep
// the cells above and the one on the left are already in the new state, their previous state is read from the history
func (g *Game) countLiving(i int, j int) int {
	living := 0

	living += b2i(g.area.cell(i-1, j-1).WatchHistory(1))
	living += b2i(g.area.cell(i-1, j).WatchHistory(1))
	living += b2i(g.area.cell(i-1, j+1).WatchHistory(1))
	living += b2i(g.area.cell(i, j-1).WatchHistory(1))

	living += b2i(g.area.cell(i, j+1).state)
	living += b2i(g.area.cell(i+1, j-1).state)
	living += b2i(g.area.cell(i+1, j).state)
	living += b2i(g.area.cell(i+1, j+1).state)

	return living
}

// NextGeneration advances the area by one generation and returns the count of live cells
// the sweep order (rows ascending, columns ascending) is what countLiving relies on
func (g *Game) NextGeneration() int {
	alive := 0
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			n := g.countLiving(i, j)
			cell := &g.area.Entities[i][j]
			newState := n == 3 || (cell.state && n == 2)
			cell.changeState(newState)
			alive += b2i(newState)
		}
	}
	g.alive = alive
	g.generation++
	g.rewound = false
	return alive
}

// StepBack rewinds every cell by one generation
// the history holds one generation, so a second StepBack in a row restores the rewound one
// and the generation counter follows the same toggle
func (g *Game) StepBack() {
	alive := 0
	g.area.walk(func(i int, j int, c *Cell) {
		c.stepBack()
		alive += b2i(c.state)
	})
	g.alive = alive
	if g.rewound {
		g.generation = g.undone
	} else {
		g.undone = g.generation
		if g.generation > 0 {
			g.generation--
		}
	}
	g.rewound = !g.rewound
}

// Cell returns the cell at row i, column j
// a dead cell with empty history is returned for positions outside the area
func (g *Game) Cell(i int, j int) Cell {
	return g.area.cell(i, j)
}

// SetCell changes the state of the cell at row i, column j, no-op outside the area
func (g *Game) SetCell(i int, j int, newState bool) {
	if !g.area.contains(i, j) {
		return
	}
	c := &g.area.Entities[i][j]
	if c.state != newState {
		if newState {
			g.alive++
		} else {
			g.alive--
		}
	}
	c.changeState(newState)
}

// String renders the area inside a box-drawing frame, two chars per cell
func (g *Game) String() string {
	inner := g.width*2 + 2
	var b strings.Builder
	b.Grow((inner + 4) * (g.height + 2) * 3)

	pad := inner - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", pad/2))
	b.WriteString(title)
	b.WriteString(strings.Repeat("─", pad-pad/2))
	b.WriteString("╮\n")

	for _, row := range g.area.Entities {
		b.WriteString("│ ")
		for _, c := range row {
			if c.state {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
		b.WriteString(" │\n")
	}

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", inner))
	b.WriteString("╯\n")
	return b.String()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
