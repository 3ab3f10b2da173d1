package main

import "math"

// splashWeight is one cell of the precomputed splash kernel: an offset from
// the accumulation center plus its normalized share of the released energy.
type splashWeight struct {
	dx, dy int
	w      float32
}

// splashKernel spreads a breaking wave's released energy over an area wider
// than a single sample point, emulating the splash footprint.
var splashKernel = precomputeSplashKernel(splashRadius, splashSigma)

// precomputeSplashKernel builds a circular Gaussian-like kernel whose weights
// sum to 1.
func precomputeSplashKernel(radius int, sigma float64) []splashWeight {
	kernel := make([]splashWeight, 0, (2*radius+1)*(2*radius+1))
	var total float64
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			w := math.Exp(-float64(dx*dx+dy*dy) / (2 * sigma * sigma))
			kernel = append(kernel, splashWeight{dx: dx, dy: dy, w: float32(w)})
			total += w
		}
	}
	inv := float32(1 / total)
	for i := range kernel {
		kernel[i].w *= inv
	}
	return kernel
}

// transferGrid accumulates the energy drained from breaking locations during
// the current tick. It is a single-tick store: the foam update must consume
// it (read and reset) before the next tick's accumulation begins, or energy
// double-counts. lastFrame keeps the previous tick's contents for debugging.
type transferGrid struct {
	*scalarGrid
	lastFrame []float32
}

// newTransferGrid allocates an empty accumulator.
func newTransferGrid(width, height int) *transferGrid {
	return &transferGrid{
		scalarGrid: newScalarGrid(width, height),
		lastFrame:  make([]float32, width*height),
	}
}

// accumulate adds amount into the cell nearest the normalized position.
func (t *transferGrid) accumulate(normalizedX, normalizedY float64, amount float32) {
	if amount <= 0 {
		return
	}
	x := clampCoord(int(math.Round(clampUnit(normalizedX)*float64(t.width-1))), 0, t.width-1)
	y := clampCoord(int(math.Round(clampUnit(normalizedY)*float64(t.height-1))), 0, t.height-1)
	t.add(x, y, amount)
}

// accumulateSpread distributes amount through the splash kernel centered on
// the nearest cell. Kernel cells falling outside the grid are skipped; the
// small mass loss at the perimeter is acceptable there.
func (t *transferGrid) accumulateSpread(normalizedX, normalizedY float64, amount float32) {
	if amount <= 0 {
		return
	}
	cx := clampCoord(int(math.Round(clampUnit(normalizedX)*float64(t.width-1))), 0, t.width-1)
	cy := clampCoord(int(math.Round(clampUnit(normalizedY)*float64(t.height-1))), 0, t.height-1)
	for _, k := range splashKernel {
		x := cx + k.dx
		y := cy + k.dy
		if x < 0 || x >= t.width || y < 0 || y >= t.height {
			continue
		}
		t.add(x, y, amount*k.w)
	}
}

// reset captures the tick's contents into lastFrame and clears the
// accumulator for the next tick.
func (t *transferGrid) reset() {
	copy(t.lastFrame, t.data)
	t.clear()
}
