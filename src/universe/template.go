package universe

import "sort"

// Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  // template name
	Descr       string  // template descr
	Coordinates [][]int // array of [x,y] coordinates
}

var builtinTemplates = []Template{
	{
		"glider",
		"the glider moving down-right by one cell every 4 generations",
		[][]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	},
	{
		"block",
		"2x2 still life",
		[][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
	{
		"blinker",
		"period 2 oscillator",
		[][]int{{1, 2}, {2, 2}, {3, 2}},
	},
	{
		"sample",
		"the test sample with 3 stable patterns",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
}

// Templates returns the built-in templates sorted by name
func Templates() []Template {
	t := make([]Template, len(builtinTemplates))
	copy(t, builtinTemplates)
	sort.Slice(t, func(i, j int) bool { return t[i].Name < t[j].Name })
	return t
}
