package universe

// HistoryBits is the width of the cell's history register
const HistoryBits = 64

// Cell is the single automaton unit
// it keeps the current state and a shift register of the previous states, the newest one at bit 0
type Cell struct {
	state   bool
	history uint64
}

// emptyCell is returned for every read outside the area, never mutated
var emptyCell = Cell{}

// State returns true if the cell is alive
func (c Cell) State() bool {
	return c.state
}

// History returns the raw history register
func (c Cell) History() uint64 {
	return c.history
}

// WatchHistory reports whether the cell was alive n generations ago
// only n == 1 carries real information, see stepBack
func (c Cell) WatchHistory(n uint) bool {
	if n == 0 {
		return false
	}
	return c.history&(1<<(n-1)) != 0
}

// changeState pushes the current state into the history and sets the new one
// bits shifted past HistoryBits are lost
func (c *Cell) changeState(newState bool) {
	c.history <<= 1
	if c.state {
		c.history |= 1
	}
	c.state = newState
}

// stepBack restores the state recorded at bit 0
// the popped bit is rotated into the top of the register, so the rewind depth is one generation:
// a second call without changeState in between doesn't reach an older generation
func (c *Cell) stepBack() {
	prev := c.history & 1
	c.history = c.history>>1 | prev<<(HistoryBits-1)
	c.state = prev != 0
}
