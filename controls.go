package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// profileHotkeys maps number keys to bathymetry profiles.
var profileHotkeys = map[ebiten.Key]string{
	ebiten.Key1: "flat",
	ebiten.Key2: "slope",
	ebiten.Key3: "sandbar",
	ebiten.Key4: "reef",
	ebiten.Key5: "channel",
}

// handleControls processes the session hotkeys: profile switching, foam
// preset toggling, view toggles, and manual pulse injection.
func (g *Game) handleControls() {
	for key, name := range profileHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			g.switchProfile(depthProfiles[name])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if g.sim.foamCfg.decayRate == foamDecayLingering {
			g.sim.foamCfg.decayRate = foamDecayFrothy
		} else {
			g.sim.foamCfg.decayRate = foamDecayLingering
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showContours = !g.showContours
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.showField = !g.showField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.field.injectPulse(1.0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.reset()
	}
}

// resolveFoamDecay maps a fuzzy-matched preset name onto a decay rate.
func resolveFoamDecay(preset string) float64 {
	name, ok := matchName(preset, []string{"lingering", "frothy"})
	if !ok {
		return foamDecayLingering
	}
	if name == "frothy" {
		return foamDecayFrothy
	}
	return foamDecayLingering
}
