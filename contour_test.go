package main

import (
	"math"
	"testing"
)

func TestCrossing(t *testing.T) {
	tests := []struct {
		name      string
		v0, v1    float32
		threshold float32
		want      float32
		ok        bool
	}{
		{"midpoint", 0, 1, 0.5, 0.5, true},
		{"quarter", 0, 1, 0.25, 0.25, true},
		{"descending", 1, 0, 0.25, 0.75, true},
		{"degenerate equal corners", 0.5, 0.5, 0.5, 0, false},
		{"clamped", 0, 0.1, 0.5, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := crossing(tt.v0, tt.v1, tt.threshold)
			if ok != tt.ok {
				t.Fatalf("crossing(%v, %v, %v) ok = %v, want %v", tt.v0, tt.v1, tt.threshold, ok, tt.ok)
			}
			if ok && !approx32(got, tt.want, 1e-6) {
				t.Errorf("crossing(%v, %v, %v) = %v, want %v", tt.v0, tt.v1, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestSingleCornerSegment(t *testing.T) {
	grid := []float32{
		1, 0,
		0, 0,
	}
	segs := extractLineSegments(grid, 2, 2, 0.5)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	// Left edge crossing at (0, 0.5), top edge crossing at (0.5, 0).
	if !approx32(s.x1, 0, 1e-6) || !approx32(s.y1, 0.5, 1e-6) {
		t.Errorf("first endpoint (%v, %v), want (0, 0.5)", s.x1, s.y1)
	}
	if !approx32(s.x2, 0.5, 1e-6) || !approx32(s.y2, 0, 1e-6) {
		t.Errorf("second endpoint (%v, %v), want (0.5, 0)", s.x2, s.y2)
	}
}

func TestUniformGridHasNoSegments(t *testing.T) {
	for _, v := range []float32{0, 0.5, 1} {
		grid := []float32{v, v, v, v, v, v, v, v, v}
		if segs := extractLineSegments(grid, 3, 3, 0.5); len(segs) != 0 {
			t.Fatalf("uniform grid of %v produced %d segments", v, len(segs))
		}
	}
}

func TestHorizontalBand(t *testing.T) {
	grid := []float32{
		1, 1,
		0, 0,
	}
	segs := extractLineSegments(grid, 2, 2, 0.5)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if !approx32(s.y1, 0.5, 1e-6) || !approx32(s.y2, 0.5, 1e-6) {
		t.Fatalf("band contour not horizontal at y=0.5: %+v", s)
	}
}

func TestSaddleProducesTwoSegments(t *testing.T) {
	grid := []float32{
		0, 1,
		1, 0,
	}
	segs := extractLineSegments(grid, 2, 2, 0.5)
	if len(segs) != 2 {
		t.Fatalf("saddle produced %d segments, want 2", len(segs))
	}
	for it, s := range segs {
		for _, c := range []float32{s.x1, s.y1, s.x2, s.y2} {
			if c < 0 || c > 1 {
				t.Fatalf("segment %d endpoint out of range: %+v", it, s)
			}
		}
	}
}

// radialGrid builds a cone peaking at the grid center, 1 in the middle
// falling linearly to 0 at radius cells away.
func radialGrid(size int, radius float64) []float32 {
	grid := make([]float32, size*size)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)-c, float64(y)-c)
			grid[y*size+x] = float32(math.Max(0, 1-dist/radius))
		}
	}
	return grid
}

func TestNestedContours(t *testing.T) {
	const size = 33
	grid := radialGrid(size, 16)

	// Endpoint radii (normalized) per threshold, extracted low to high.
	radii := make([][2]float64, len(contourThresholds))
	for i, threshold := range contourThresholds {
		segs := extractLineSegments(grid, size, size, threshold)
		if len(segs) < 8 {
			t.Fatalf("threshold %v produced only %d segments", threshold, len(segs))
		}
		minR, maxR := math.Inf(1), 0.0
		for _, s := range segs {
			for _, p := range [][2]float64{{float64(s.x1), float64(s.y1)}, {float64(s.x2), float64(s.y2)}} {
				r := math.Hypot(p[0]-0.5, p[1]-0.5)
				minR = math.Min(minR, r)
				maxR = math.Max(maxR, r)
			}
		}
		radii[i] = [2]float64{minR, maxR}
	}

	// Higher thresholds must sit strictly inside lower ones.
	for i := 1; i < len(radii); i++ {
		inner := radii[i]
		outer := radii[i-1]
		if inner[1] >= outer[0] {
			t.Fatalf("threshold %v ring (max radius %v) not strictly inside threshold %v ring (min radius %v)",
				contourThresholds[i], inner[1], contourThresholds[i-1], outer[0])
		}
	}
}

func TestBoxBlurUniformUnchanged(t *testing.T) {
	grid := make([]float32, 5*5)
	for i := range grid {
		grid[i] = 0.4
	}
	out := boxBlur(grid, 5, 5, 3)
	for i, v := range out {
		if !approx32(v, 0.4, 1e-6) {
			t.Fatalf("blurred[%d] = %v, want 0.4", i, v)
		}
	}
}

func TestBoxBlurSpreadsSpike(t *testing.T) {
	grid := make([]float32, 5*5)
	grid[2*5+2] = 1
	out := boxBlur(grid, 5, 5, 1)

	if out[2*5+2] >= 1 {
		t.Fatalf("spike not reduced: %v", out[2*5+2])
	}
	if !approx32(out[2*5+2], 1.0/9.0, 1e-6) {
		t.Fatalf("center = %v, want 1/9", out[2*5+2])
	}
	if out[1*5+2] != out[2*5+1] || out[1*5+2] <= 0 {
		t.Fatalf("spike spread asymmetric: %v vs %v", out[1*5+2], out[2*5+1])
	}
	if grid[1*5+2] != 0 {
		t.Fatalf("boxBlur mutated its input")
	}
}

func TestBoxBlurZeroPassesCopies(t *testing.T) {
	grid := []float32{0, 1, 2, 3}
	out := boxBlur(grid, 2, 2, 0)
	for i := range grid {
		if out[i] != grid[i] {
			t.Fatalf("zero-pass blur altered values: %v", out)
		}
	}
	out[0] = 9
	if grid[0] == 9 {
		t.Fatalf("zero-pass blur returned the input slice instead of a copy")
	}
}
