package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The scene ships no image files. Every renderable is drawn once at startup
// into an offscreen image with the vector package and then used like a
// normal sprite. This keeps the binary small (it goes on a web page) and
// makes restyling a matter of editing code, not exporting assets.
//
// The contract with the rest of the program is simple: given a variant tag,
// Primitives hands back a positioned, scalable sprite. How a gpu or a token
// looks is decided entirely in this file.

// Primitives holds the renderable representation of everything in the scene.
type Primitives struct {
	Token       *ebiten.Image
	Components  [NVariants]*ebiten.Image
	BeamFrames  []*ebiten.Image
	ParticleDot *ebiten.Image
}

func BuildPrimitives() (p Primitives) {
	p.Token = buildTokenImg()
	p.Components[VariantGpu] = buildGpuImg()
	p.Components[VariantRam] = buildRamImg()
	p.Components[VariantCpu] = buildCpuImg()
	p.Components[VariantMotherboard] = buildMotherboardImg()
	p.BeamFrames = buildBeamFrames()
	p.ParticleDot = buildParticleDot()
	return
}

// Component returns the sprite for a variant, or nil for a tag this build
// doesn't know. Callers must treat nil as "skip drawing this frame".
func (p *Primitives) Component(v Variant) *ebiten.Image {
	if v < 0 || v >= NVariants {
		return nil
	}
	return p.Components[v]
}

var (
	colGold       = color.NRGBA{232, 193, 90, 255}
	colGoldDark   = color.NRGBA{176, 138, 48, 255}
	colGoldGlow   = color.NRGBA{255, 228, 150, 90}
	colBoard      = color.NRGBA{32, 94, 70, 255}
	colBoardLight = color.NRGBA{55, 135, 100, 255}
	colChip       = color.NRGBA{38, 42, 54, 255}
	colChipLight  = color.NRGBA{70, 78, 98, 255}
	colPin        = color.NRGBA{212, 175, 96, 255}
	colTeal       = color.NRGBA{64, 200, 190, 255}
	colBeam       = color.NRGBA{120, 210, 255, 255}
)

const sprite = float32(ItemSpritePixels)

// buildTokenImg draws the value token: a gold coin with a ring and a glyph.
func buildTokenImg() *ebiten.Image {
	img := ebiten.NewImage(ItemSpritePixels, ItemSpritePixels)
	c := sprite / 2
	vector.DrawFilledCircle(img, c, c, 56, colGoldGlow, true)
	vector.DrawFilledCircle(img, c, c, 48, colGoldDark, true)
	vector.DrawFilledCircle(img, c, c, 42, colGold, true)
	vector.StrokeCircle(img, c, c, 34, 4, colGoldDark, true)
	// A diamond glyph in the middle; near enough to a "value" mark.
	vector.StrokeLine(img, c, c-18, c+14, c, 5, colGoldDark, true)
	vector.StrokeLine(img, c+14, c, c, c+18, 5, colGoldDark, true)
	vector.StrokeLine(img, c, c+18, c-14, c, 5, colGoldDark, true)
	vector.StrokeLine(img, c-14, c, c, c-18, 5, colGoldDark, true)
	return img
}

// buildGpuImg draws a graphics card: a long body with two fans and a
// bracket.
func buildGpuImg() *ebiten.Image {
	img := ebiten.NewImage(ItemSpritePixels, ItemSpritePixels)
	vector.DrawFilledRect(img, 8, 40, 112, 48, colChip, true)
	vector.StrokeRect(img, 8, 40, 112, 48, 3, colChipLight, true)
	// Fans.
	vector.DrawFilledCircle(img, 42, 64, 18, colChipLight, true)
	vector.DrawFilledCircle(img, 42, 64, 7, colTeal, true)
	vector.DrawFilledCircle(img, 88, 64, 18, colChipLight, true)
	vector.DrawFilledCircle(img, 88, 64, 7, colTeal, true)
	// PCIe edge connector.
	vector.DrawFilledRect(img, 20, 88, 70, 7, colPin, true)
	return img
}

// buildRamImg draws a memory stick: a slim slab with chips and an edge of
// pins.
func buildRamImg() *ebiten.Image {
	img := ebiten.NewImage(ItemSpritePixels, ItemSpritePixels)
	vector.DrawFilledRect(img, 46, 14, 36, 94, colBoard, true)
	vector.StrokeRect(img, 46, 14, 36, 94, 3, colBoardLight, true)
	for i := 0; i < 4; i++ {
		vector.DrawFilledRect(img, 53, float32(22+i*20), 22, 12, colChip, true)
	}
	vector.DrawFilledRect(img, 48, 108, 32, 6, colPin, true)
	return img
}

// buildCpuImg draws a processor: a square package with a pin border and a
// die in the middle.
func buildCpuImg() *ebiten.Image {
	img := ebiten.NewImage(ItemSpritePixels, ItemSpritePixels)
	vector.DrawFilledRect(img, 28, 28, 72, 72, colChip, true)
	vector.StrokeRect(img, 28, 28, 72, 72, 3, colChipLight, true)
	vector.DrawFilledRect(img, 48, 48, 32, 32, colChipLight, true)
	// Pins on all four sides.
	for i := 0; i < 6; i++ {
		o := float32(34 + i*11)
		vector.DrawFilledRect(img, o, 18, 5, 8, colPin, true)
		vector.DrawFilledRect(img, o, 102, 5, 8, colPin, true)
		vector.DrawFilledRect(img, 18, o, 8, 5, colPin, true)
		vector.DrawFilledRect(img, 102, o, 8, 5, colPin, true)
	}
	return img
}

// buildMotherboardImg draws a motherboard: a green board with a socket, two
// memory slots and a couple of expansion slots.
func buildMotherboardImg() *ebiten.Image {
	img := ebiten.NewImage(ItemSpritePixels, ItemSpritePixels)
	vector.DrawFilledRect(img, 14, 14, 100, 100, colBoard, true)
	vector.StrokeRect(img, 14, 14, 100, 100, 3, colBoardLight, true)
	// CPU socket.
	vector.DrawFilledRect(img, 26, 26, 34, 34, colChip, true)
	vector.StrokeRect(img, 26, 26, 34, 34, 2, colChipLight, true)
	// Memory slots.
	vector.DrawFilledRect(img, 72, 24, 8, 60, colChipLight, true)
	vector.DrawFilledRect(img, 86, 24, 8, 60, colChipLight, true)
	// Expansion slots.
	vector.DrawFilledRect(img, 26, 74, 40, 8, colChip, true)
	vector.DrawFilledRect(img, 26, 90, 52, 8, colChip, true)
	return img
}

// buildBeamFrames pre-renders the breathing glow of the portal beam. Each
// frame is the same vertical beam with the core width and halo alpha moved
// along one breath cycle; played in a loop by an Animation it reads as a
// slow shimmer, on top of which BeamPulse modulates the overall brightness
// every frame.
func buildBeamFrames() []*ebiten.Image {
	const nFrames = 12
	frames := make([]*ebiten.Image, nFrames)
	w := float32(BeamSpriteWidth)
	h := float32(BeamSpriteHeight)
	for f := 0; f < nFrames; f++ {
		img := ebiten.NewImage(BeamSpriteWidth, BeamSpriteHeight)
		breath := 0.5 + 0.5*math.Sin(2*math.Pi*float64(f)/nFrames)
		// Halo: wide and faint, layered to fake a gradient.
		for layer := 0; layer < 5; layer++ {
			lw := w * (1 - float32(layer)*0.18)
			a := uint8(14 + float64(layer)*9 + breath*10)
			clr := color.NRGBA{colBeam.R, colBeam.G, colBeam.B, a}
			vector.DrawFilledRect(img, (w-lw)/2, 0, lw, h, clr, true)
		}
		// Core: narrow and bright, breathing between 18 and 30 px.
		cw := float32(18 + 12*breath)
		core := color.NRGBA{235, 250, 255, uint8(150 + 60*breath)}
		vector.DrawFilledRect(img, (w-cw)/2, 0, cw, h, core, true)
		frames[f] = img
	}
	return frames
}

// buildParticleDot draws the one sprite every field particle shares: a soft
// dot, three stacked circles standing in for a radial falloff.
func buildParticleDot() *ebiten.Image {
	img := ebiten.NewImage(ParticleSpritePixels, ParticleSpritePixels)
	c := float32(ParticleSpritePixels) / 2
	vector.DrawFilledCircle(img, c, c, 7, color.NRGBA{colBeam.R, colBeam.G, colBeam.B, 50}, true)
	vector.DrawFilledCircle(img, c, c, 4.5, color.NRGBA{colBeam.R, colBeam.G, colBeam.B, 120}, true)
	vector.DrawFilledCircle(img, c, c, 2.5, color.NRGBA{240, 252, 255, 220}, true)
	return img
}
