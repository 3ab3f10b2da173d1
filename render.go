package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints the water, foam, and contour overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fillPixels()
	if g.gridImage == nil {
		g.gridImage = ebiten.NewImage(fieldW, fieldH)
	}
	g.gridImage.WritePixels(g.pixels)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(renderScale, renderScale)
	screen.DrawImage(g.gridImage, &op)

	if g.showContours {
		g.drawContours(screen)
	}

	if *debugFlag {
		g.drawDebugOverlay(screen)
	}
}

// fillPixels composites depth shading, energy tint, and foam whitening into
// the RGBA buffer, one byte quad per grid cell.
func (g *Game) fillPixels() {
	foam := g.sim.foam.data
	elev := g.sim.field.elevation.data
	for y := 0; y < fieldH; y++ {
		progress := float64(y) / float64(fieldH-1)
		for x := 0; x < fieldW; x++ {
			i := y*fieldW + x
			nx := float64(x) / float64(fieldW-1)

			// Deep water renders dark blue, shoals teal.
			d := clampUnit(g.depthAt(nx, progress) / deepWaterDepthMeters)
			r := lerp(26, 8, d)
			gc := lerp(110, 44, d)
			b := lerp(150, 96, d)

			if g.showField {
				e := clampUnit(math.Abs(float64(elev[i])))
				gc += e * 90
				b += e * 60
			}

			f := clampUnit(float64(foam[i]))
			r = lerp(r, 245, f)
			gc = lerp(gc, 250, f)
			b = lerp(b, 252, f)

			base := i * 4
			g.pixels[base] = byte(r)
			g.pixels[base+1] = byte(gc)
			g.pixels[base+2] = byte(b)
			g.pixels[base+3] = 255
		}
	}
}

// drawContours extracts foam isolines from a blurred, clamped snapshot and
// strokes them in screen space. Thresholds run low to high so the bright
// inner rings draw over the faint outer ones.
func (g *Game) drawContours(screen *ebiten.Image) {
	smoothed := boxBlur(g.sim.foam.clamped(), fieldW, fieldH, *blurPassesFlag)
	sw := float32(fieldW-1) * renderScale
	sh := float32(fieldH-1) * renderScale
	for i, threshold := range contourThresholds {
		shade := byte(170 + i*40)
		clr := color.RGBA{shade, shade, 255, 255}
		for _, seg := range extractLineSegments(smoothed, fieldW, fieldH, threshold) {
			vector.StrokeLine(screen, seg.x1*sw, seg.y1*sh, seg.x2*sw, seg.y2*sh, contourStrokePx, clr, true)
		}
	}
}

// drawDebugOverlay prints frame timings and simulation counters.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	simMS := g.lastSimDuration.Seconds() * 1000
	msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nSim: %.2f ms\nWaves: %d\nProfile: %s\nFoam decay: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), simMS, len(g.sim.waves), g.toProfile.name, g.sim.foamCfg.decayRate)
	ebitenutil.DebugPrint(screen, msg)
}
