//go:build gridassert

package main

import "fmt"

// assertCell panics when the coordinates fall outside the grid. Compiled in
// only under the gridassert build tag so release builds keep the flat-array
// access free of branches.
func assertCell(g *scalarGrid, x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid index (%d,%d) out of %dx%d bounds", x, y, g.width, g.height))
	}
}
