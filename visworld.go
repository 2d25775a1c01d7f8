package main

import "math"

// The ambient effects around the portal: the beam glow and the particle
// field. Both are purely decorative and self-animating. They take the shared
// elapsed time as their only input and never interact with the flying items
// in any way, so all of this is visual logic, not World logic.

// NParticles is the size of the particle field. The field is stateless:
// a particle is a pure function of its index and the elapsed time, so the
// count can be changed freely without touching any update code.
const NParticles = 96

// Particle is the computed state of one field particle for the current
// frame. Nothing stores these; DrawParticles recomputes them every frame.
type Particle struct {
	Pos   Vec3
	Alpha float64
	Size  float64
}

// ParticleAt computes particle i at the given elapsed time. Each particle
// loops forever: it is emitted near the base of the beam, drifts up and
// sideways, fades in and back out, then restarts. All per-particle constants
// are drawn from a generator seeded with the particle's index, which is what
// makes the field deterministic without storing anything.
func ParticleAt(i int64, elapsed float64) (p Particle) {
	r := NewRand(i)
	cycle := r.RFloat(2.5, 6)      // seconds per loop
	offset := r.RFloat(0, cycle)   // desynchronize the loops
	baseX := r.RFloat(-0.45, 0.45) // emitted inside the beam's width
	drift := r.RFloat(-0.3, 0.3)   // sideways drift per loop
	depth := r.RFloat(-0.6, 0.6)
	size := r.RFloat(0.5, 1)

	// progress in [0, 1): where in its loop this particle currently is.
	progress := math.Mod(elapsed+offset, cycle) / cycle

	p.Pos.X = baseX + drift*progress
	// The beam stands at x = 0 and spans the lateral range [-BeamHalfHeight,
	// BeamHalfHeight]. Particles rise through that range and slightly past
	// its top before they fade out.
	p.Pos.Y = -BeamHalfHeight + progress*(2*BeamHalfHeight+0.4)
	p.Pos.Z = depth
	// Fade in and out over the loop; full brightness mid-flight.
	p.Alpha = math.Sin(progress * math.Pi)
	p.Size = size
	return
}

// BeamHalfHeight is half the lateral extent of the portal beam, in scene
// units. Items spawn with lateral offsets inside this range so they always
// cross the visible part of the beam.
const BeamHalfHeight = 1.5

// BeamPulse returns the brightness multiplier of the beam at the given
// elapsed time, in [BeamPulseMin, 1]. Two sines with incommensurate
// frequencies so the pulsing doesn't read as a metronome.
func BeamPulse(elapsed float64) float64 {
	s := 0.5*math.Sin(elapsed*2.1) + 0.5*math.Sin(elapsed*3.7)
	// s is in [-1, 1]; map it to [BeamPulseMin, 1].
	return BeamPulseMin + (1-BeamPulseMin)*(s+1)/2
}

const BeamPulseMin = 0.55

// VisWorld is a world parallel to World that holds "visual logic". Draw()
// relies on the information in VisWorld to draw things, just like it relies
// on World. It is meant to be stepped alongside World, in the Update()
// function.
type VisWorld struct {
	Animations
}

func NewVisWorld(anims Animations) (v VisWorld) {
	v.Animations = anims
	return
}

func (v *VisWorld) Step(w *World) {
	// Only the beam glow has stepped state; the particles and the pulse are
	// pure functions of w.Elapsed and need no stepping.
	v.animBeamGlow.Step()
}
