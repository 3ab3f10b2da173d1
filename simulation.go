package main

import "math"

// simState owns every grid of the simulation pipeline plus the row-shift
// accumulator for the energy field's translation. One step runs the full
// ordered pipeline: swell injection and field propagation, then breaking
// drains into the transfer grid, then foam consumption of the transfer grid.
// Contours are extracted afterwards by the renderer, from the finished foam
// state. Everything is single-threaded; a step either fully completes or the
// caller has a bug.
type simState struct {
	field    *energyField
	transfer *transferGrid
	foam     *foamGrid

	waves   []*wave
	spawner *waveSpawner
	swells  []swellSource

	depth          depthFn
	damping        dampingConfig
	foamCfg        foamConfig
	travelDuration float64

	rowAccum float64
	now      float64
}

// newSimState builds a session's simulation over the given bathymetry.
func newSimState(depth depthFn, seed int64) *simState {
	return &simState{
		field:          newEnergyField(fieldW, fieldH),
		transfer:       newTransferGrid(fieldW, fieldH),
		foam:           newFoamGrid(fieldW, fieldH),
		spawner:        newWaveSpawner(seed),
		swells:         defaultSwells(),
		depth:          depth,
		damping:        newDampingConfig(defaultDampingCoefficient, defaultDampingExponent),
		foamCfg:        newFoamConfig(defaultDiffusionRate, foamDecayLingering, defaultDriftSpeed),
		travelDuration: defaultTravelDuration,
	}
}

// step advances the whole simulation by dt seconds.
func (s *simState) step(dt float64) {
	s.now += dt

	s.waves = s.spawner.update(s.now, s.field.width, s.waves)

	s.field.injectSwells(s.swells, s.now)
	s.field.step(s.depth, dt, s.travelDuration, s.damping, &s.rowAccum)

	s.advanceWaves(dt)

	s.foam.update(s.transfer, dt, s.foamCfg)
	s.transfer.reset()
}

// advanceWaves moves every wave front shoreward and drains energy into the
// transfer grid wherever a front is breaking. Retired fronts are dropped.
func (s *simState) advanceWaves(dt float64) {
	drain := float32(breakDrainPerSec * dt)
	alive := s.waves[:0]
	for _, wv := range s.waves {
		if !advanceWave(wv, s.depth, dt, s.travelDuration, s.field.width) {
			continue
		}
		for x := 0; x < s.field.width; x++ {
			progress := wv.progressPerX[x]
			if progress >= 1 {
				continue
			}
			nx := float64(x) / float64(s.field.width-1)
			d := math.Max(s.depth(nx, progress), minDepthMeters)
			energy := math.Abs(float64(s.field.heightAt(nx, progress)))
			if !isWaveBreakingWithEnergy(wv, d, energy) {
				continue
			}
			released := s.field.drainAt(nx, progress, drain)
			if released > 0 {
				s.transfer.accumulateSpread(nx, progress, released)
			}
		}
		alive = append(alive, wv)
	}
	s.waves = alive
}

// reset reinitializes the session: all grids cleared, the row-shift
// accumulator zeroed, and every wave dropped. The clock keeps running so swell
// phases stay continuous.
func (s *simState) reset() {
	s.field.reset()
	s.transfer.clear()
	s.foam.reset()
	s.waves = s.waves[:0]
	s.rowAccum = 0
}
