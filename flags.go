package main

import "flag"

// Command-line flags that control the bathymetry, foam behavior, and runtime
// diagnostics. Name-valued flags are resolved with fuzzy matching so a typo
// still lands on the intended profile.
var (
	// profileNameFlag selects the bathymetry profile (fuzzy-matched).
	profileNameFlag = flag.String("profile", "sandbar", "bathymetry profile: flat, slope, sandbar, reef, or channel")

	// foamPresetFlag selects how long foam lingers before popping.
	foamPresetFlag = flag.String("foam", "lingering", "foam preset: lingering or frothy")

	// driftFlag sets a lateral current carrying foam sideways.
	driftFlag = flag.Float64("drift", defaultDriftSpeed, "foam drift speed in columns per second (negative flows left)")

	// dampCoefficientFlag scales the depth-dependent wave damping.
	dampCoefficientFlag = flag.Float64("damp-coefficient", defaultDampingCoefficient, "energy damping coefficient (0 disables damping)")

	// dampExponentFlag controls how strongly shallow water increases damping.
	dampExponentFlag = flag.Float64("damp-exponent", defaultDampingExponent, "depth exponent of the damping term")

	// blurPassesFlag smooths the foam grid before contour extraction.
	blurPassesFlag = flag.Int("blur-passes", defaultBlurPasses, "box blur passes applied before contour extraction")

	// contoursFlag toggles drawing of foam isolines.
	contoursFlag = flag.Bool("contours", true, "draw foam contour lines")

	// seedFlag fixes the wave spawner's randomness for reproducible sessions.
	seedFlag = flag.Int64("seed", 0, "wave spawner seed (0 uses the clock)")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation timing overlay")

	// recordProfileFlag captures a CPU profile while the simulation runs.
	recordProfileFlag = flag.Bool("record-profile", false, "write cpu.pprof for the first 15s of the session")
)
