package main

import "math"

// ScaleEpsilon is the smallest scale the token or component representation
// of an item is allowed to have. A scale of exactly 0 is degenerate (and a
// negative one flips the sprite), so instead of 0 we clamp to this value and
// let the visibility threshold hide the sprite.
const ScaleEpsilon = 0.01

// VisibleScaleThreshold decides whether a representation is drawn at all.
// A representation whose effective scale sits at the epsilon clamp is below
// this threshold and invisible. This must stay above ScaleEpsilon times the
// largest possible scale jitter, otherwise a fully-blended-out component
// would still flicker into view.
const VisibleScaleThreshold = 0.02

// FlyingItem is one in-flight entity: a value token that crosses the scene
// left to right and turns into a hardware component at the portal.
//
// The first group of fields is decided at spawn time and never changes. The
// second group is the animator state: it starts zeroed and is advanced every
// tick by Step. An item whose Born is false has not been observed by a tick
// yet (the UNBORN state). Items never end on their own, they fly right until
// the spawner evicts them to make room.
type FlyingItem struct {
	Id            int64
	LateralOffset float64
	DepthOffset   float64
	Speed         float64
	Variant       Variant
	SpinRate      Vec3
	ScaleJitter   float64

	// Animator state.
	Born      bool
	BirthTime float64
	Rotation  Vec3
}

// ItemTransform is everything the drawing side needs to render one item. It
// is computed fresh every frame from the item's state and the shared elapsed
// time; nothing in here is stored back on the item.
type ItemTransform struct {
	Pos              Vec3
	Rotation         Vec3
	Blend            float64
	TokenScale       float64
	ComponentScale   float64
	TokenVisible     bool
	ComponentVisible bool
}

// Step advances the animator by one tick. The item captures the current
// elapsed time as its birth time on the first tick it observes. I prefer
// this lazy capture over stamping the birth time at spawn because it makes
// "time alive" start at a real observed tick: the item has genuinely been
// alive for zero time on its first update, no matter how spawning and
// updating end up ordered.
func (it *FlyingItem) Step(elapsed float64) {
	if !it.Born {
		it.Born = true
		it.BirthTime = elapsed
	}
	// The rotation accumulates forever and is never normalized. Sin and cos
	// downstream don't care and the scene doesn't run long enough for the
	// float to lose meaningful precision.
	it.Rotation.Add(it.SpinRate)
}

// TimeAlive returns how long this item has existed, measured on the shared
// scene clock. Every per-item computation keys off this value instead of
// sampling a wall clock, so items can never drift relative to each other.
func (it *FlyingItem) TimeAlive(elapsed float64) float64 {
	Assert(it.Born)
	t := elapsed - it.BirthTime
	if t < 0 {
		// The scene clock never goes backwards, but don't let a caller with a
		// stale elapsed value produce an item flying left of its spawn point.
		t = 0
	}
	return t
}

// Pos computes the item's position purely from its parameters and time
// alive. Horizontal motion is linear. The lateral and depth coordinates get
// a bounded sinusoidal wobble whose phase is seeded by the item id, so that
// items that are visible at the same time don't bob in lockstep.
func (it *FlyingItem) Pos(elapsed float64, params *SceneParams) (p Vec3) {
	t := it.TimeAlive(elapsed)
	phase := float64(it.Id) * 2.39996 // golden angle, spreads phases nicely
	p.X = params.SpawnX + t*it.Speed
	p.Y = it.LateralOffset + params.WobbleAmplitude*math.Sin(t*params.WobbleFrequency+phase)
	p.Z = it.DepthOffset + params.WobbleAmplitude*math.Cos(t*params.WobbleFrequency*0.8+phase)
	return
}

// Blend maps a horizontal position to the cross-fade factor between the two
// representations. Left of the transformation zone the item is purely a
// token (0), right of it purely a component (1), inside the zone the factor
// is the linear position within the zone. The zone is a symmetric window of
// half-width zoneHalfWidth around the portal at x = 0.
func Blend(x float64, zoneHalfWidth float64) float64 {
	if x <= -zoneHalfWidth {
		return 0
	}
	if x >= zoneHalfWidth {
		return 1
	}
	return (x + zoneHalfWidth) / (2 * zoneHalfWidth)
}

// Transform computes the full render transform for this item. The cross-fade
// is done by scale, not by opacity: the token representation shrinks from
// full size to the epsilon clamp as the item crosses the zone while the
// component representation grows from the clamp to its jittered full size.
// Whether a representation is visible at all follows from its scale.
func (it *FlyingItem) Transform(elapsed float64, params *SceneParams) (tr ItemTransform) {
	tr.Pos = it.Pos(elapsed, params)
	tr.Rotation = it.Rotation
	tr.Blend = Blend(tr.Pos.X, params.ZoneHalfWidth)
	Assert(tr.Blend >= 0 && tr.Blend <= 1)

	tr.TokenScale = math.Max(1-tr.Blend, ScaleEpsilon)
	tr.ComponentScale = math.Max(tr.Blend, ScaleEpsilon) * it.ScaleJitter
	tr.TokenVisible = tr.TokenScale > VisibleScaleThreshold
	tr.ComponentVisible = tr.ComponentScale > VisibleScaleThreshold
	return
}
