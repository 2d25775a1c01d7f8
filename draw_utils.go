package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
)

// DrawSpriteCentered draws img with its center at (x, y) on screen, scaled
// by (scaleX, scaleY), rotated by rotation radians around its center, with
// the given alpha in [0, 1].
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSpriteCentered(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, scaleX float64, scaleY float64,
	rotation float64, alpha float64) {
	if img == nil {
		// The renderable for this sprite doesn't exist (yet). Skip it for
		// this frame instead of crashing; it fixes itself once whoever is
		// responsible finishes building it.
		return
	}
	op := &ebiten.DrawImageOptions{}
	imgSize := img.Bounds().Size()
	// Move the center of the image to the origin so that scaling and
	// rotation happen around the center, not around the top-left corner.
	op.GeoM.Translate(-float64(imgSize.X)/2, -float64(imgSize.Y)/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x,
		float64(screen.Bounds().Min.Y)+y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate
// system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Do this because when dealing with sub-images I think in relative
	// coordinates. For img2 = img1.SubImage(pt1, pt2) I expect that
	// img2.At(0, 0) indicates the same pixel as img1.At(pt1). Ebitengine
	// doesn't do it like that, it keeps the parent's coordinates, so shift
	// the rectangle by the parent's origin and keep thinking in local
	// coordinates everywhere else.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}
