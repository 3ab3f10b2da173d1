package main

import (
	"math"
	"math/rand"
	"time"
)

// waveSpawner periodically launches background waves and, on a longer cadence,
// groups of larger set waves. It owns the randomness; the simulation owns the
// resulting wave list.
type waveSpawner struct {
	rng            *rand.Rand
	nextBackground float64
	nextSet        float64
	pendingSet     int
	nextSetWave    float64
}

// newWaveSpawner seeds the spawner; a zero seed falls back to the clock.
func newWaveSpawner(seed int64) *waveSpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &waveSpawner{
		rng:            rand.New(rand.NewSource(seed)),
		nextBackground: 1.0,
		nextSet:        setWaveEvery,
	}
}

// update spawns any waves due at the given simulation time and appends them to
// the list, returning the new slice.
func (s *waveSpawner) update(now float64, columns int, waves []*wave) []*wave {
	if now >= s.nextBackground {
		amp := 0.25 + s.rng.Float64()*0.3
		waves = append(waves, newWave(now, amp, waveBackground, columns))
		s.nextBackground = now + backgroundWaveEvery*(0.7+s.rng.Float64()*0.6)
	}
	if now >= s.nextSet && s.pendingSet == 0 {
		s.pendingSet = setWaveCount
		s.nextSetWave = now
		s.nextSet = now + setWaveEvery*(0.8+s.rng.Float64()*0.4)
	}
	if s.pendingSet > 0 && now >= s.nextSetWave {
		amp := 0.7 + s.rng.Float64()*0.3
		waves = append(waves, newWave(now, amp, waveSet, columns))
		s.pendingSet--
		s.nextSetWave = now + setWaveSpacing
	}
	return waves
}

// advanceWave moves a wave front shoreward over one tick. Each column advances
// at a rate scaled by the local shallow-water celerity, so the front slows and
// bends over shoals. Returns false once the whole front has passed the shore.
func advanceWave(wv *wave, depth depthFn, dt, travelDuration float64, columns int) bool {
	alive := false
	for x := 0; x < columns; x++ {
		progress := wv.progressPerX[x]
		if progress >= 1 {
			continue
		}
		nx := float64(x) / float64(columns-1)
		d := math.Max(depth(nx, progress), minDepthMeters)
		speed := math.Sqrt(d / deepWaterDepthMeters)
		if speed > 1 {
			speed = 1
		} else if speed < shoalSpeedFloor {
			speed = shoalSpeedFloor
		}
		wv.progressPerX[x] = progress + speed*dt/travelDuration
		alive = true
	}
	return alive
}
