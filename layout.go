package main

import "image"

// Visual areas
// ------------
//
// - The game area: the fixed-size canvas the scene is composed on. Sized
// like a wide hero banner because that is where the scene ends up on the
// site. Known at compile time.
// - The screen: contains the game area plus whatever margins are needed to
// fill the application window (or the browser canvas). Its size is known
// only at run time.

const GameWidth = int64(1920)
const GameHeight = int64(1080)

// Projection of scene space onto the game area
// --------------------------------------------
//
// Scene space is the World's coordinate system: x runs left to right with
// the portal at 0, y is the lateral offset, z is depth. The projection is a
// cheap fake perspective: x and y map linearly to pixels and z only
// attenuates the sprite scale and nudges y, which is plenty for a scene
// where depth exists to add variety, not geometry.

// PixelsPerUnitX maps scene x to pixels. Items spawn at SpawnX (around -9)
// and get evicted long before x grows large, so [-10, 10] is the range worth
// showing: 20 units over the banner width, with a small margin.
const PixelsPerUnitX = 90.0
const PixelsPerUnitY = 220.0

// DepthScalePerUnit shrinks (z > 0, away from the viewer) or grows (z < 0)
// a sprite per unit of depth.
const DepthScalePerUnit = 0.18

// DepthYShiftPixels nudges a sprite down per unit of depth, a small parallax
// hint that keeps overlapping items readable.
const DepthYShiftPixels = 30.0

// Base sprite sizes, in pixels, before depth and blend scaling.
const ItemSpritePixels = 128
const ParticleSpritePixels = 16
const BeamSpriteWidth = 150
const BeamSpriteHeight = 760

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the window's actual size and return the size I want, in
	// pixels, for the bitmap that will be drawn into it. Ebitengine scales
	// that bitmap to the window, preserving aspect ratio. I return a bitmap
	// with the window's aspect ratio that is just large enough to contain
	// the fixed game area, then center the game area inside it, so the scene
	// never distorts and the leftovers are filled with background.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(GameWidth) / float64(GameHeight)
	if outsideAspectRatio < gameAspectRatio {
		// Window is taller than the scene: match widths.
		screenWidth = int(GameWidth)
		screenHeight = int(float64(screenWidth) / outsideAspectRatio)
	} else {
		// Window is wider than the scene: match heights.
		screenHeight = int(GameHeight)
		screenWidth = int(float64(screenHeight) * outsideAspectRatio)
	}

	// Define the game area relative to the total screen area.
	minX := (int64(screenWidth) - GameWidth) / 2
	minY := (int64(screenHeight) - GameHeight) / 2
	g.gameArea = image.Rect(int(minX), int(minY),
		int(minX+GameWidth), int(minY+GameHeight))
	return
}

// SceneToGame projects a scene-space position to game-area pixels plus the
// depth scale factor to apply to the sprite drawn there.
func SceneToGame(pos Vec3) (x float64, y float64, depthScale float64) {
	x = float64(GameWidth)/2 + pos.X*PixelsPerUnitX
	y = float64(GameHeight)/2 - pos.Y*PixelsPerUnitY + pos.Z*DepthYShiftPixels
	depthScale = 1 - pos.Z*DepthScalePerUnit
	if depthScale < 0.1 {
		depthScale = 0.1
	}
	return
}
