package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationFps is the global number that says how fast animations run.
// The Update() method runs at 60 FPS (ebitengine's default) but the looping
// effects (the beam glow) don't need a new frame every tick. This is a
// global setting for all animations in the scene; mixing animation rates in
// one scene looks inconsistent.
const AnimationFps = 30

// AnimationFramesPerImage is the number we actually use in the computations
// so just set it here.
const AnimationFramesPerImage = 60 / AnimationFps

// Animation represents an instance of a running, looping animation.
// It is cheap to copy this struct. You should make copies for every instance
// of an animation that you need: once the images exist there's no need to
// change them, so copies just share the image references.
type Animation struct {
	Imgs     []*ebiten.Image
	ImgIndex int64
	FrameIdx int64
}

// NewAnimation builds an animation over frames that were rendered
// procedurally at startup (see primitives.go). The scene has no image files;
// everything it shows is generated.
func NewAnimation(imgs []*ebiten.Image) (a Animation) {
	Assert(len(imgs) > 0)
	a.Imgs = imgs
	return
}

func (a *Animation) Step() {
	a.FrameIdx++
	if a.FrameIdx == AnimationFramesPerImage {
		a.FrameIdx = 0
		a.ImgIndex++
		if a.ImgIndex == int64(len(a.Imgs)) {
			a.ImgIndex = 0
		}
	}
}

func (a *Animation) CurrentImg() *ebiten.Image {
	return a.Imgs[a.ImgIndex]
}

func (a *Animation) TotalNFrames() int64 {
	return AnimationFramesPerImage * int64(len(a.Imgs))
}
