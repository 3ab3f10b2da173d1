package main

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// depthFn maps a normalized horizontal position and shoreward progress to a
// water depth in meters. Progress runs from 0 at the horizon to 1 at the
// shore.
type depthFn func(normalizedX, progress float64) float64

type profileKind int

const (
	profileFlat profileKind = iota
	profileSlope
	profileSandbar
	profileReef
	profileChannel
)

// depthProfile describes one closed-form bathymetry. Every kind starts from a
// base depth that is linear in progress and layers a localized feature on top:
// a sandbar shoal across the beach, a circular reef, or a deeper rip channel.
type depthProfile struct {
	name string
	kind profileKind

	deepDepth    float64
	shallowDepth float64

	barCenter    float64
	barRadius    float64
	barIntensity float64

	reefX         float64
	reefProgress  float64
	reefRadius    float64
	reefIntensity float64

	channelCenter float64
	channelWidth  float64
	channelDepth  float64
}

// depthAt evaluates the profile. The result is never negative; callers floor
// it at minDepthMeters before using it as a divisor.
func (p *depthProfile) depthAt(normalizedX, progress float64) float64 {
	x := clampUnit(normalizedX)
	prog := clampUnit(progress)

	depth := p.deepDepth
	if p.kind != profileFlat {
		depth = lerp(p.deepDepth, p.shallowDepth, prog)
	}

	switch p.kind {
	case profileSandbar:
		// Gaussian shoal across the full width at the bar's progress line.
		d := (prog - p.barCenter) / p.barRadius
		depth -= p.barIntensity * math.Exp(-d*d)
	case profileReef:
		// Circular shoal rising toward the reef center.
		dx := x - p.reefX
		dy := prog - p.reefProgress
		dist := math.Hypot(dx, dy)
		if dist < p.reefRadius {
			depth -= p.reefIntensity * (1 - dist/p.reefRadius)
		}
	case profileChannel:
		// Deeper vertical strip where the rip current flows back out.
		d := (x - p.channelCenter) / p.channelWidth
		depth += p.channelDepth * math.Exp(-d*d)
	}

	return math.Max(0, depth)
}

// depthProfiles holds every built-in bathymetry, keyed by name.
var depthProfiles = map[string]*depthProfile{
	"flat": {
		name:      "flat",
		kind:      profileFlat,
		deepDepth: deepWaterDepthMeters,
	},
	"slope": {
		name:         "slope",
		kind:         profileSlope,
		deepDepth:    deepWaterDepthMeters,
		shallowDepth: 0.2,
	},
	"sandbar": {
		name:         "sandbar",
		kind:         profileSandbar,
		deepDepth:    deepWaterDepthMeters,
		shallowDepth: 1.2,
		barCenter:    0.55,
		barRadius:    0.12,
		barIntensity: 2.4,
	},
	"reef": {
		name:          "reef",
		kind:          profileReef,
		deepDepth:     deepWaterDepthMeters,
		shallowDepth:  2.0,
		reefX:         0.5,
		reefProgress:  0.45,
		reefRadius:    0.22,
		reefIntensity: 4.5,
	},
	"channel": {
		name:          "channel",
		kind:          profileChannel,
		deepDepth:     deepWaterDepthMeters,
		shallowDepth:  0.6,
		channelCenter: 0.5,
		channelWidth:  0.07,
		channelDepth:  3.0,
	},
}

// profileNames lists the built-in profile names in stable order.
func profileNames() []string {
	names := make([]string, 0, len(depthProfiles))
	for name := range depthProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// matchName resolves a possibly misspelled user-supplied name against a set of
// candidates: exact match first, then unambiguous prefix, then bounded edit
// distance. Returns false when nothing is close enough.
func matchName(input string, candidates []string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}
	for _, cand := range candidates {
		if token == cand {
			return cand, true
		}
	}
	if len(token) >= 2 {
		for _, cand := range candidates {
			if strings.HasPrefix(cand, token) {
				return cand, true
			}
		}
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > editDistanceLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	if bestDist == -1 {
		return "", false
	}
	return best, true
}

// editDistanceLimit scales the accepted typo budget with the candidate length.
func editDistanceLimit(length int) int {
	switch {
	case length >= 10:
		return 3
	case length >= 6:
		return 2
	default:
		return 1
	}
}

// matchProfileName resolves a user-supplied bathymetry name.
func matchProfileName(input string) (*depthProfile, bool) {
	name, ok := matchName(input, profileNames())
	if !ok {
		return nil, false
	}
	return depthProfiles[name], true
}
