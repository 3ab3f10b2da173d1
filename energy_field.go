package main

import "math"

// energyField stores the signed wave elevation and its rate of change on a
// grid spanning horizon (row 0) to shore (last row). The magnitude of the
// elevation is what downstream consumers treat as "energy".
type energyField struct {
	width, rows int
	elevation   *scalarGrid
	velocity    *scalarGrid
}

// dampingConfig holds the depth-dependent damping parameters. Shallower water
// damps faster: each cell is scaled by exp(-coefficient*dt/depth^exponent).
type dampingConfig struct {
	coefficient float64
	exponent    float64
}

// newDampingConfig validates the parameters once at construction; a negative
// coefficient is clamped to zero and a non-positive exponent falls back to the
// default.
func newDampingConfig(coefficient, exponent float64) dampingConfig {
	if coefficient < 0 {
		coefficient = 0
	}
	if exponent <= 0 {
		exponent = defaultDampingExponent
	}
	return dampingConfig{coefficient: coefficient, exponent: exponent}
}

// newEnergyField allocates a field with the given dimensions. Fields are
// created once per session and never resized.
func newEnergyField(width, rows int) *energyField {
	return &energyField{
		width:     width,
		rows:      rows,
		elevation: newScalarGrid(width, rows),
		velocity:  newScalarGrid(width, rows),
	}
}

// injectSwells replaces the horizon row with the summed elevation of all swell
// sources at the given time. This is the open-ocean boundary condition; it
// overwrites rather than accumulates.
func (f *energyField) injectSwells(swells []swellSource, now float64) {
	var elev, vel float64
	for _, s := range swells {
		omega := 2 * math.Pi / s.period
		elev += s.amplitude * math.Sin(omega*now+s.phase)
		vel += s.amplitude * omega * math.Cos(omega*now+s.phase)
	}
	horizon := f.elevation.row(0)
	horizonVel := f.velocity.row(0)
	for x := range horizon {
		horizon[x] = float32(elev)
		horizonVel[x] = float32(vel)
	}
}

// injectPulse adds amount uniformly across the horizon row, accumulating with
// whatever elevation is already present.
func (f *energyField) injectPulse(amount float32) {
	horizon := f.elevation.row(0)
	for x := range horizon {
		horizon[x] += amount
	}
}

// step advances the field one physics tick. Deep-water motion is an exact
// translation: energy crosses one row every travelDuration/rows seconds,
// tracked by the caller-owned accumulator so the shift stays frame-rate
// independent. Damping then scales every cell by the depth-dependent factor.
func (f *energyField) step(depth depthFn, dt, travelDuration float64, damping dampingConfig, accum *float64) {
	rowPeriod := travelDuration / float64(f.rows)
	*accum += dt
	for *accum+rowShiftEpsilon >= rowPeriod {
		f.shiftShoreward()
		*accum -= rowPeriod
	}

	if damping.coefficient == 0 {
		return
	}
	for y := 0; y < f.rows; y++ {
		progress := float64(y) / float64(f.rows-1)
		elev := f.elevation.row(y)
		vel := f.velocity.row(y)
		for x := 0; x < f.width; x++ {
			d := math.Max(depth(float64(x)/float64(f.width-1), progress), minDepthMeters)
			factor := float32(math.Exp(-damping.coefficient * dt / math.Pow(d, damping.exponent)))
			elev[x] *= factor
			vel[x] *= factor
		}
	}
}

// shiftShoreward moves every row one step toward the shore and clears the
// vacated horizon row. The last row's content falls off the grid.
func (f *energyField) shiftShoreward() {
	for y := f.rows - 1; y >= 1; y-- {
		copy(f.elevation.row(y), f.elevation.row(y-1))
		copy(f.velocity.row(y), f.velocity.row(y-1))
	}
	horizon := f.elevation.row(0)
	horizonVel := f.velocity.row(0)
	for x := range horizon {
		horizon[x] = 0
		horizonVel[x] = 0
	}
}

// heightAt samples the elevation at a normalized position using bilinear
// interpolation over the four enclosing cells.
func (f *energyField) heightAt(normalizedX, normalizedY float64) float32 {
	gx := clampUnit(normalizedX) * float64(f.width-1)
	gy := clampUnit(normalizedY) * float64(f.rows-1)
	x0 := clampCoord(int(gx), 0, f.width-1)
	y0 := clampCoord(int(gy), 0, f.rows-1)
	x1 := clampCoord(x0+1, 0, f.width-1)
	y1 := clampCoord(y0+1, 0, f.rows-1)
	tx := float32(gx - float64(x0))
	ty := float32(gy - float64(y0))

	top := f.elevation.at(x0, y0)*(1-tx) + f.elevation.at(x1, y0)*tx
	bottom := f.elevation.at(x0, y1)*(1-tx) + f.elevation.at(x1, y1)*tx
	return top*(1-ty) + bottom*ty
}

// drainAt removes up to amount of elevation magnitude from the cell nearest
// the normalized position, never driving the cell past zero, and returns the
// amount actually removed. Callers must use the return value: a drain against
// a depleted cell yields less than requested, or exactly zero.
func (f *energyField) drainAt(normalizedX, normalizedY float64, amount float32) float32 {
	if amount <= 0 {
		return 0
	}
	x := clampCoord(int(math.Round(clampUnit(normalizedX)*float64(f.width-1))), 0, f.width-1)
	y := clampCoord(int(math.Round(clampUnit(normalizedY)*float64(f.rows-1))), 0, f.rows-1)
	idx := f.elevation.index(x, y)
	v := f.elevation.data[idx]
	switch {
	case v > 0:
		removed := amount
		if removed > v {
			removed = v
		}
		f.elevation.data[idx] = v - removed
		return removed
	case v < 0:
		removed := amount
		if removed > -v {
			removed = -v
		}
		f.elevation.data[idx] = v + removed
		return removed
	default:
		return 0
	}
}

// totalEnergy sums the elevation magnitude across the whole grid.
func (f *energyField) totalEnergy() float64 {
	var total float64
	for _, v := range f.elevation.data {
		total += math.Abs(float64(v))
	}
	return total
}

// reset clears both buffers for scene reinitialization.
func (f *energyField) reset() {
	f.elevation.clear()
	f.velocity.clear()
}
