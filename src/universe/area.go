package universe

// Area is the rectangular field where cells are living
// everything outside [0,Height) x [0,Width) is dead
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

// cell returns the cell at row i, column j or emptyCell if the position is outside the area
func (a *Area) cell(i int, j int) Cell {
	if !a.contains(i, j) {
		return emptyCell
	}
	return a.Entities[i][j]
}

func (a *Area) contains(i int, j int) bool {
	return i >= 0 && j >= 0 && i < a.Height && j < a.Width
}

// walk walks the entire area in row-major order and calls the cb function for each cell
func (a *Area) walk(cb func(i int, j int, c *Cell)) {
	for i := range a.Entities {
		for j := range a.Entities[i] {
			cb(i, j, &a.Entities[i][j])
		}
	}
}

// createArea allocates the new area, all rows share one backing slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
