package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Draw composes the frame: background, beam, particle field, then every
// active item in collection order. Draw never mutates the World; everything
// it needs is either stored state or a pure function of the World's elapsed
// time, so drawing twice would produce the same frame twice.
func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. Fill
	// all of it with the backdrop color so the margins around the game area
	// don't flicker as leftover garbage, then compose the scene inside the
	// game area only.
	screen.Fill(colBackdrop)

	game := SubImage(screen, g.gameArea)
	g.DrawScene(game)

	if g.showDebugOverlay {
		g.DrawDebugOverlay(game)
	}
}

var colBackdrop = color.NRGBA{10, 12, 22, 255}
var colSceneBg = color.NRGBA{14, 17, 30, 255}

func (g *Gui) DrawScene(game *ebiten.Image) {
	game.Fill(colSceneBg)
	g.DrawBeam(game)
	g.DrawParticles(game)
	for i := range g.world.Items {
		g.DrawItem(game, &g.world.Items[i])
	}
}

// DrawBeam draws the portal beam at the scene origin. The shimmer comes
// from the pre-rendered animation frames, the slower pulsing from BeamPulse;
// both key off nothing but the shared clock.
func (g *Gui) DrawBeam(game *ebiten.Image) {
	img := g.visWorld.animBeamGlow.CurrentImg()
	x, y, _ := SceneToGame(Vec3{0, 0, 0})
	pulse := BeamPulse(g.world.Elapsed)
	DrawSpriteCentered(game, img, x, y, 1, 1, 0, pulse)
}

func (g *Gui) DrawParticles(game *ebiten.Image) {
	for i := int64(0); i < NParticles; i++ {
		p := ParticleAt(i, g.world.Elapsed)
		x, y, depthScale := SceneToGame(p.Pos)
		s := p.Size * depthScale
		DrawSpriteCentered(game, g.prims.ParticleDot, x, y, s, s, 0, p.Alpha)
	}
}

// DrawItem draws one flying item: the token representation and the
// component representation, overlapping, each with the scale and visibility
// the item's transform dictates. The cross-fade at the portal is entirely a
// consequence of those two scales.
func (g *Gui) DrawItem(game *ebiten.Image, it *FlyingItem) {
	if !it.Born {
		// The item was appended but its first tick hasn't run yet, so it has
		// no transform. Skip it for this frame; the next tick fixes it.
		return
	}
	tr := it.Transform(g.world.Elapsed, &g.world.Params)
	x, y, depthScale := SceneToGame(tr.Pos)

	// The world rotates items on all three axes but the sprites are flat.
	// Z rotation spins the sprite in the screen plane; X and Y rotations
	// squash it vertically and horizontally, which reads as tumbling.
	squashX := math.Abs(math.Cos(tr.Rotation.Y))
	squashY := math.Abs(math.Cos(tr.Rotation.X))
	if squashX < 0.15 {
		squashX = 0.15
	}
	if squashY < 0.15 {
		squashY = 0.15
	}

	if tr.TokenVisible {
		// The token has its own slow idle spin on top of the item's tumble.
		// That spin belongs to the token's look, not to the item's motion,
		// which is why it lives here and not in the World.
		spin := tr.Rotation.Z + g.world.Elapsed*0.6
		s := tr.TokenScale * depthScale
		DrawSpriteCentered(game, g.prims.Token, x, y, s*squashX, s*squashY, spin, 1)
	}
	if tr.ComponentVisible {
		s := tr.ComponentScale * depthScale
		DrawSpriteCentered(game, g.prims.Component(it.Variant), x, y,
			s*squashX, s*squashY, tr.Rotation.Z, 1)
	}
}

func (g *Gui) DrawDebugOverlay(game *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("frame %d  elapsed %.2f", g.frameIdx, g.world.Elapsed),
		fmt.Sprintf("items %d / %d  spawned %d",
			len(g.world.Items), g.world.Params.MaxItems, g.world.NSpawned),
	}
	if it := g.world.NewestItem(); it != nil && it.Born {
		tr := it.Transform(g.world.Elapsed, &g.world.Params)
		lines = append(lines, fmt.Sprintf(
			"newest id %d  %s  x %.2f  blend %.2f",
			it.Id, it.Variant, tr.Pos.X, tr.Blend))
	}
	if g.paused {
		lines = append(lines, "paused (space resumes, right arrow steps)")
	}
	for i, line := range lines {
		text.Draw(game, line, g.defaultFont, 24, 48+i*40, color.White)
	}
}
