package main

import "time"

// Simulation and rendering configuration constants used throughout the
// application. These values define the grid size, timing, and tuning defaults
// for the surf-zone wave and foam simulation.
const (
	fieldW, fieldH = 96, 64
	renderScale    = 10
	defaultTPS     = 60.0

	// Energy field translation and damping.
	defaultTravelDuration     = 14.0
	defaultDampingCoefficient = 0.1
	defaultDampingExponent    = 2.0
	minDepthMeters            = 0.5
	deepWaterDepthMeters      = 10.0
	rowShiftEpsilon           = 1e-9

	// Breaking detection (McCowan breaker index).
	breakerIndex     = 0.78
	minWaveHeightM   = 0.5
	maxWaveHeightM   = 3.0
	minBreakEnergy   = 0.08
	breakDrainPerSec = 2.5
	shoalSpeedFloor  = 0.35

	// Splash spread when a breaking wave releases energy.
	splashRadius = 2
	splashSigma  = 1.0

	// Foam evolution defaults.
	defaultDiffusionRate = 4.0
	foamDecayLingering   = 0.35
	foamDecayFrothy      = 1.2
	defaultDriftSpeed    = 0.0

	// Contour extraction.
	defaultBlurPasses = 2
	contourStrokePx   = 1.5

	// Wave spawning cadence (seconds).
	backgroundWaveEvery = 5.0
	setWaveEvery        = 28.0
	setWaveCount        = 3
	setWaveSpacing      = 2.2

	// Swell boundary condition defaults.
	defaultSwellPeriod    = 7.0
	defaultSwellAmplitude = 0.55

	// Runtime profile transitions and profiling capture.
	profileTweenSeconds   = 1.5
	recordProfileDuration = 15 * time.Second
)

// contourThresholds are the foam intensity levels extracted each frame,
// ordered low to high so inner rings draw over outer ones.
var contourThresholds = []float32{0.15, 0.3, 0.5}
