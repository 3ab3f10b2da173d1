package main

// swellSource describes one open-ocean swell component. The horizon row of the
// energy field is driven by the summed elevation of all active sources.
type swellSource struct {
	period    float64
	amplitude float64
	phase     float64
}

// newSwellSource constructs a validated source; non-positive periods and
// negative amplitudes are clamped to usable values.
func newSwellSource(period, amplitude, phase float64) swellSource {
	if period <= 0 {
		period = defaultSwellPeriod
	}
	if amplitude < 0 {
		amplitude = 0
	}
	return swellSource{period: period, amplitude: amplitude, phase: phase}
}

// defaultSwells returns the mixed groundswell plus short-period windswell used
// at startup.
func defaultSwells() []swellSource {
	return []swellSource{
		newSwellSource(defaultSwellPeriod, defaultSwellAmplitude, 0),
		newSwellSource(4.3, 0.18, 1.1),
	}
}
