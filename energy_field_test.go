package main

import (
	"math"
	"testing"
)

// flatDepth is a constant-depth bathymetry for field tests.
func flatDepth(meters float64) depthFn {
	return func(_, _ float64) float64 { return meters }
}

func TestPulseTranslation(t *testing.T) {
	// A 1.0 pulse on a 5x6 deep-water grid with a 6s travel duration crosses
	// one row per second. After exactly 3 simulated seconds the full pulse
	// must sit on row 3 and nowhere else.
	f := newEnergyField(5, 6)
	f.injectPulse(1.0)
	noDamping := newDampingConfig(0, defaultDampingExponent)

	var accum float64
	dt := 1.0 / 60.0
	for tick := 0; tick < 180; tick++ {
		f.step(flatDepth(deepWaterDepthMeters), dt, 6.0, noDamping, &accum)
	}

	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.width; x++ {
			want := float32(0)
			if y == 3 {
				want = 1
			}
			if got := f.elevation.at(x, y); got != want {
				t.Fatalf("after 180 ticks, elevation(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestConservationWithoutDamping(t *testing.T) {
	f := newEnergyField(8, 10)
	f.injectPulse(1.0)
	f.elevation.set(3, 1, -0.6)
	f.elevation.set(5, 2, 0.25)
	noDamping := newDampingConfig(0, defaultDampingExponent)

	want := f.totalEnergy()
	var accum float64
	dt := 1.0 / 60.0
	for tick := 0; tick < 120; tick++ {
		f.step(flatDepth(deepWaterDepthMeters), dt, 10.0, noDamping, &accum)
		if got := f.totalEnergy(); !approx(got, want, 1e-5) {
			t.Fatalf("tick %d: total energy %v, want %v", tick, got, want)
		}
	}
}

func TestDampingMonotonic(t *testing.T) {
	low := newEnergyField(6, 8)
	high := newEnergyField(6, 8)
	low.injectPulse(1.0)
	high.injectPulse(1.0)

	cfgLow := newDampingConfig(0.05, 2.0)
	cfgHigh := newDampingConfig(0.2, 2.0)
	depth := flatDepth(2.0)

	var accumLow, accumHigh float64
	dt := 1.0 / 60.0
	for tick := 0; tick < 100; tick++ {
		low.step(depth, dt, 8.0, cfgLow, &accumLow)
		high.step(depth, dt, 8.0, cfgHigh, &accumHigh)
		if high.totalEnergy() > low.totalEnergy()+1e-9 {
			t.Fatalf("tick %d: higher damping kept more energy (%v > %v)",
				tick, high.totalEnergy(), low.totalEnergy())
		}
	}
	if !(high.totalEnergy() < low.totalEnergy()) {
		t.Fatalf("after 100 ticks damping rates were indistinguishable")
	}
}

func TestDampingClampsShallowDepth(t *testing.T) {
	// Near-zero reported depth must be floored before it divides, not blow up.
	f := newEnergyField(4, 4)
	f.injectPulse(1.0)
	cfg := newDampingConfig(0.5, 2.0)

	var accum float64
	f.step(flatDepth(0), 1.0/60.0, 100.0, cfg, &accum)
	for i, v := range f.elevation.data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("elevation[%d] = %v after zero-depth damping", i, v)
		}
	}
	wantFactor := math.Exp(-0.5 * (1.0 / 60.0) / (minDepthMeters * minDepthMeters))
	if got := f.elevation.at(0, 0); !approx32(got, float32(wantFactor), 1e-6) {
		t.Fatalf("horizon cell = %v, want damped by floored depth to %v", got, wantFactor)
	}
}

func TestDrainAt(t *testing.T) {
	tests := []struct {
		name      string
		cell      float32
		request   float32
		wantTaken float32
		wantLeft  float32
	}{
		{"partial drain", 0.5, 0.2, 0.2, 0.3},
		{"over-drain returns available", 0.5, 0.9, 0.5, 0},
		{"exact drain", 0.5, 0.5, 0.5, 0},
		{"empty cell", 0, 0.4, 0, 0},
		{"negative elevation drains toward zero", -0.4, 0.25, 0.25, -0.15},
		{"zero request", 0.5, 0, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEnergyField(4, 4)
			f.elevation.set(2, 1, tt.cell)
			taken := f.drainAt(2.0/3.0, 1.0/3.0, tt.request)
			if !approx32(taken, tt.wantTaken, 1e-6) {
				t.Errorf("drainAt returned %v, want %v", taken, tt.wantTaken)
			}
			if got := f.elevation.at(2, 1); !approx32(got, tt.wantLeft, 1e-6) {
				t.Errorf("cell left at %v, want %v", got, tt.wantLeft)
			}
		})
	}
}

func TestHeightAtBilinear(t *testing.T) {
	f := newEnergyField(2, 2)
	f.elevation.set(0, 0, 0)
	f.elevation.set(1, 0, 1)
	f.elevation.set(0, 1, 2)
	f.elevation.set(1, 1, 3)

	tests := []struct {
		name   string
		nx, ny float64
		want   float32
	}{
		{"top-left corner", 0, 0, 0},
		{"top-right corner", 1, 0, 1},
		{"bottom-left corner", 0, 1, 2},
		{"bottom-right corner", 1, 1, 3},
		{"center", 0.5, 0.5, 1.5},
		{"top mid", 0.5, 0, 0.5},
		{"left mid", 0, 0.5, 1},
		{"clamped outside", -1, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.heightAt(tt.nx, tt.ny); !approx32(got, tt.want, 1e-6) {
				t.Errorf("heightAt(%v, %v) = %v, want %v", tt.nx, tt.ny, got, tt.want)
			}
		})
	}
}

func TestInjectSwellsReplacesHorizon(t *testing.T) {
	f := newEnergyField(4, 3)
	f.injectPulse(5)

	// period 4 at t=1 puts the sine at its crest.
	swells := []swellSource{newSwellSource(4, 1, 0)}
	f.injectSwells(swells, 1)

	for x := 0; x < f.width; x++ {
		if got := f.elevation.at(x, 0); !approx32(got, 1, 1e-6) {
			t.Fatalf("horizon cell %d = %v, want 1 (replaced, not accumulated)", x, got)
		}
	}
	for x := 0; x < f.width; x++ {
		if got := f.elevation.at(x, 1); got != 0 {
			t.Fatalf("row 1 cell %d = %v, want untouched 0", x, got)
		}
	}
}

func TestSwellSummation(t *testing.T) {
	f := newEnergyField(3, 2)
	swells := []swellSource{
		newSwellSource(4, 0.5, 0),
		newSwellSource(8, 0.25, math.Pi/2),
	}
	now := 3.0
	want := 0.5*math.Sin(2*math.Pi*now/4) + 0.25*math.Sin(2*math.Pi*now/8+math.Pi/2)
	f.injectSwells(swells, now)
	if got := f.elevation.at(1, 0); !approx32(got, float32(want), 1e-6) {
		t.Fatalf("summed swell elevation = %v, want %v", got, want)
	}
}

func TestFieldReset(t *testing.T) {
	f := newEnergyField(4, 4)
	f.injectPulse(1)
	f.velocity.set(1, 1, 2)
	f.reset()
	if f.totalEnergy() != 0 {
		t.Fatalf("total energy %v after reset, want 0", f.totalEnergy())
	}
	if got := f.velocity.at(1, 1); got != 0 {
		t.Fatalf("velocity survived reset: %v", got)
	}
}
