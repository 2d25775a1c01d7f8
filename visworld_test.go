package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestParticleFieldIsAPureFunction(t *testing.T) {
	// Same index and time, same particle: the field stores nothing, so a
	// frame drawn twice must look identical.
	for i := int64(0); i < NParticles; i++ {
		p1 := ParticleAt(i, 12.345)
		p2 := ParticleAt(i, 12.345)
		assert.Equal(t, p1, p2)
	}
}

func TestParticlesStayNearTheBeam(t *testing.T) {
	RSeed(1)
	for tick := 0; tick < 2000; tick++ {
		i := RInt(0, NParticles-1)
		elapsed := RFloat(0, 600)
		p := ParticleAt(i, elapsed)

		assert.GreaterOrEqual(t, p.Alpha, 0.0)
		assert.LessOrEqual(t, p.Alpha, 1.0)
		// Emitted inside the beam's width, drifting at most 0.3 sideways.
		assert.LessOrEqual(t, p.Pos.X, 0.75)
		assert.GreaterOrEqual(t, p.Pos.X, -0.75)
		// Rises from the base of the beam to a bit past its top.
		assert.GreaterOrEqual(t, p.Pos.Y, -BeamHalfHeight)
		assert.LessOrEqual(t, p.Pos.Y, BeamHalfHeight+0.4)
		assert.GreaterOrEqual(t, p.Size, 0.5)
		assert.LessOrEqual(t, p.Size, 1.0)
	}
}

func TestParticlesAreDesynchronized(t *testing.T) {
	// If all particles sat at the same loop phase the field would blink as
	// one. Check that at one instant their alphas spread out.
	distinct := map[float64]bool{}
	for i := int64(0); i < NParticles; i++ {
		distinct[ParticleAt(i, 3.0).Alpha] = true
	}
	assert.Greater(t, len(distinct), int(NParticles)*3/4)
}

func TestBeamPulseStaysInRange(t *testing.T) {
	for elapsed := 0.0; elapsed < 120; elapsed += 0.01 {
		pulse := BeamPulse(elapsed)
		assert.GreaterOrEqual(t, pulse, BeamPulseMin)
		assert.LessOrEqual(t, pulse, 1.0)
	}
}

func TestAnimationLoops(t *testing.T) {
	// The images are never touched by Step, so placeholder nils are fine
	// here; what matters is the frame bookkeeping.
	a := NewAnimation(make([]*ebiten.Image, 3))

	assert.Equal(t, int64(3*AnimationFramesPerImage), a.TotalNFrames())
	for tick := int64(0); tick < a.TotalNFrames(); tick++ {
		assert.GreaterOrEqual(t, a.ImgIndex, int64(0))
		assert.Less(t, a.ImgIndex, int64(3))
		a.Step()
	}
	// One full cycle brings it back to the start.
	assert.Equal(t, int64(0), a.ImgIndex)
	assert.Equal(t, int64(0), a.FrameIdx)
}
