package main

type waveKind int

const (
	waveBackground waveKind = iota
	waveSet
)

// wave tracks one shoreward-traveling wave front. progressPerX holds the
// front's shoreward progress per grid column, which lets a front bend over
// uneven bathymetry. Waves carry no breaking state; breaking is evaluated
// fresh every tick from depth and local energy.
type wave struct {
	spawnTime    float64
	amplitude    float64
	kind         waveKind
	progressPerX []float64
}

// newWave spawns a front at the horizon with uniform zero progress.
func newWave(spawnTime, amplitude float64, kind waveKind, columns int) *wave {
	return &wave{
		spawnTime:    spawnTime,
		amplitude:    clampUnit(amplitude),
		kind:         kind,
		progressPerX: make([]float64, columns),
	}
}

// waveHeightMeters maps a normalized amplitude onto the physical wave height
// range used by the breaker criterion.
func waveHeightMeters(amplitude float64) float64 {
	return minWaveHeightM + clampUnit(amplitude)*(maxWaveHeightM-minWaveHeightM)
}

// heightExceedsBreaker is the McCowan criterion: a wave becomes unstable when
// its height strictly exceeds breakerIndex times the local depth.
func heightExceedsBreaker(heightMeters, depthMeters float64) bool {
	return heightMeters > breakerIndex*depthMeters
}

// isWaveBreaking reports whether the wave's physical height exceeds the
// breaker limit for the given depth.
func isWaveBreaking(wv *wave, depthMeters float64) bool {
	return heightExceedsBreaker(waveHeightMeters(wv.amplitude), depthMeters)
}

// isWaveBreakingWithEnergy additionally requires enough remaining local
// energy. Once a location has been drained it stops re-breaking, letting the
// wave reform in deeper water and break again elsewhere.
func isWaveBreakingWithEnergy(wv *wave, depthMeters float64, energyAtPoint float64) bool {
	if energyAtPoint < minBreakEnergy {
		return false
	}
	return isWaveBreaking(wv, depthMeters)
}
