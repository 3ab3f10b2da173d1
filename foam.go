package main

import "math"

// foamConfig holds the tunable rates of the foam layer. decayRate controls
// how quickly bubbles pop, diffusionRate how fast foam spreads to neighboring
// cells, driftSpeed how many columns per second a lateral current carries it.
type foamConfig struct {
	diffusionRate float64
	decayRate     float64
	driftSpeed    float64
}

// newFoamConfig validates the rates once at construction. Negative diffusion
// and decay are clamped to zero; drift may be negative to flow the other way.
func newFoamConfig(diffusionRate, decayRate, driftSpeed float64) foamConfig {
	if diffusionRate < 0 {
		diffusionRate = 0
	}
	if decayRate < 0 {
		decayRate = 0
	}
	return foamConfig{diffusionRate: diffusionRate, decayRate: decayRate, driftSpeed: driftSpeed}
}

// foamGrid is the persistent foam intensity layer. Values sit roughly in
// [0, 1], soft-bounded by decay and diffusion rather than hard clamping. The
// snapshot and scratch buffers are reused across ticks to keep the update
// allocation-free.
type foamGrid struct {
	*scalarGrid
	snapshot []float32
	scratch  []float32
}

// newFoamGrid allocates an empty foam layer.
func newFoamGrid(width, height int) *foamGrid {
	return &foamGrid{
		scalarGrid: newScalarGrid(width, height),
		snapshot:   make([]float32, width*height),
		scratch:    make([]float32, width*height),
	}
}

// update applies one tick of foam evolution: inflow from the transfer grid,
// exponential decay, Laplacian diffusion, and optional column drift. The
// caller resets the transfer grid afterwards; reading it twice would
// double-count the released energy.
func (f *foamGrid) update(transfer *transferGrid, dt float64, cfg foamConfig) {
	for i, v := range transfer.data {
		f.data[i] += v
	}

	if cfg.decayRate > 0 {
		factor := float32(math.Exp(-cfg.decayRate * dt))
		for i := range f.data {
			f.data[i] *= factor
		}
	}

	if cfg.diffusionRate > 0 {
		f.diffuse(float32(cfg.diffusionRate * dt))
	}

	if cfg.driftSpeed != 0 {
		f.drift(cfg.driftSpeed * dt)
	}
}

// diffuse applies one explicit finite-difference step of the discrete
// Laplacian. It reads from a frame-start snapshot so already-updated cells
// cannot bias the pass direction. Perimeter cells are left untouched; there is
// no wraparound.
func (f *foamGrid) diffuse(k float32) {
	copy(f.snapshot, f.data)
	w := f.width
	for y := 1; y < f.height-1; y++ {
		base := y * w
		for x := 1; x < w-1; x++ {
			i := base + x
			c := f.snapshot[i]
			lap := f.snapshot[i-1] + f.snapshot[i+1] + f.snapshot[i-w] + f.snapshot[i+w] - 4*c
			f.data[i] = c + k*lap
		}
	}
}

// drift redistributes each cell's foam mass shift columns sideways, splitting
// the fractional part between the two nearest integer columns so foam crosses
// cell boundaries without stair-stepping. Mass carried past the grid edge is
// lost.
func (f *foamGrid) drift(shift float64) {
	whole := int(math.Floor(shift))
	frac := float32(shift - float64(whole))
	for i := range f.scratch {
		f.scratch[i] = 0
	}
	w := f.width
	for y := 0; y < f.height; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			v := f.data[base+x]
			if v == 0 {
				continue
			}
			c0 := x + whole
			if c0 >= 0 && c0 < w {
				f.scratch[base+c0] += v * (1 - frac)
			}
			if c1 := c0 + 1; c1 >= 0 && c1 < w && frac > 0 {
				f.scratch[base+c1] += v * frac
			}
		}
	}
	copy(f.data, f.scratch)
}

// clamped returns a copy of the foam data hard-clamped to [0, 1], the form
// handed to the contour extractor so out-of-range values cannot produce
// isoline artifacts.
func (f *foamGrid) clamped() []float32 {
	out := make([]float32, len(f.data))
	for i, v := range f.data {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out
}

// reset clears the foam layer for scene reinitialization.
func (f *foamGrid) reset() {
	f.clear()
}
