package main

// scalarGrid is a flat row-major float32 grid. Row 0 is the horizon side of
// the simulation; the last row is the shore. The flat buffer keeps the hot
// loops contiguous; index assertions compile in only under the gridassert
// build tag.
type scalarGrid struct {
	width, height int
	data          []float32
}

// newScalarGrid allocates a zeroed grid with the given dimensions.
func newScalarGrid(width, height int) *scalarGrid {
	return &scalarGrid{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// index converts cell coordinates into a flat buffer offset.
func (g *scalarGrid) index(x, y int) int {
	assertCell(g, x, y)
	return y*g.width + x
}

// at returns the value stored at the given cell.
func (g *scalarGrid) at(x, y int) float32 {
	return g.data[g.index(x, y)]
}

// set writes a value into the given cell.
func (g *scalarGrid) set(x, y int, v float32) {
	g.data[g.index(x, y)] = v
}

// add accumulates a value into the given cell.
func (g *scalarGrid) add(x, y int, v float32) {
	g.data[g.index(x, y)] += v
}

// row returns the backing slice for one grid row.
func (g *scalarGrid) row(y int) []float32 {
	base := g.index(0, y)
	return g.data[base : base+g.width]
}

// clear zeroes every cell.
func (g *scalarGrid) clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampUnit constrains v to the closed [0, 1] interval.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
