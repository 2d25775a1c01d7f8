package main

// World rules
// - The scene clock (Elapsed) only ever moves forward, by a fixed dt per
// tick. It is the single time source: the spawner and every item measure
// against it, nothing samples the wall clock.
// - The spawner creates exactly one item per elapsed spawn interval. If the
// frame rate collapses and several intervals pass between two ticks, we
// still spawn at most one item on that tick. A burst of catch-up spawns
// would look broken, a slightly thinner stream doesn't.
// - The active item collection is a FIFO bounded by MaxItems. When a spawn
// would exceed the bound, the oldest item is evicted first, in the same
// tick, so the bound never breaks even transiently.
// - Eviction is purely count-based. An item can be evicted while it is still
// on screen, which pops it out visibly under high spawn pressure. This is
// accepted; see the note on SpawnInterval in config.yaml.
// - Items have no end-of-life of their own. They fly right forever until
// evicted; their position is unbounded.

// SimDt is the fixed time step of the scene, in seconds. The GUI runs the
// world at ebitengine's fixed 60 ticks per second, so one tick is 1/60 s.
const SimDt = 1.0 / 60

// SceneParams are the tunable constants of the scene. They come from
// data/config.yaml and are safe to swap at runtime (the dev build reloads
// them when the file changes): they are only read, never written, by the
// World.
type SceneParams struct {
	// MaxItems is the capacity bound of the active item collection.
	MaxItems int64 `yaml:"MaxItems"`
	// SpawnInterval is the fixed duration between spawns, in seconds.
	SpawnInterval float64 `yaml:"SpawnInterval"`
	// SpawnX is where items appear. It must sit well left of the
	// transformation zone so an item is always fully a token before it
	// starts blending.
	SpawnX float64 `yaml:"SpawnX"`
	// ZoneHalfWidth is half the width of the transformation zone, which is
	// centered on the portal at x = 0.
	ZoneHalfWidth float64 `yaml:"ZoneHalfWidth"`

	// Randomization ranges for fresh items, all uniform.
	MinSpeed         float64 `yaml:"MinSpeed"`
	MaxSpeed         float64 `yaml:"MaxSpeed"`
	MaxLateralOffset float64 `yaml:"MaxLateralOffset"`
	MaxDepthOffset   float64 `yaml:"MaxDepthOffset"`
	MaxSpinRate      float64 `yaml:"MaxSpinRate"`
	MinScaleJitter   float64 `yaml:"MinScaleJitter"`
	MaxScaleJitter   float64 `yaml:"MaxScaleJitter"`

	// Wobble of the flight lane around the item's initial offsets.
	WobbleAmplitude float64 `yaml:"WobbleAmplitude"`
	WobbleFrequency float64 `yaml:"WobbleFrequency"`
}

// World is the simulation core of the scene: the shared clock, the spawner
// and the active items. It knows nothing about rendering; the GUI reads it
// and draws whatever it finds. Everything is public for the usual reason: I
// want to inspect the world freely from the GUI, from tests and from any
// future analysis script.
type World struct {
	Params        SceneParams
	Elapsed       float64
	Items         []FlyingItem
	NextId        int64
	LastSpawnTime float64
	NSpawned      int64
	Rand          Rand
}

func NewWorld(params SceneParams, seed int64) (w World) {
	Assert(params.MaxItems > 0)
	Assert(params.SpawnInterval > 0)
	Assert(params.SpawnX < -params.ZoneHalfWidth)
	w.Params = params
	w.Rand = NewRand(seed)
	// Start the spawn timer a full interval in the past so the very first
	// tick spawns an item. An empty scene on page load looks like a bug.
	w.LastSpawnTime = -params.SpawnInterval
	return
}

// Step advances the scene by one tick. The order inside one tick is fixed:
// advance the clock, run the spawner, then step every active item in
// collection order. Items update independently of each other, keyed off
// their own time alive; the collection order only decides who gets the tick
// first, which no item can observe.
func (w *World) Step(dt float64) {
	Assert(dt > 0)
	w.Elapsed += dt

	if w.Elapsed-w.LastSpawnTime >= w.Params.SpawnInterval {
		w.spawnItem()
		// Record the actual spawn moment instead of advancing by the
		// interval. This is what makes slow frames spawn one item instead of
		// a catch-up burst: the debt of skipped intervals is forgiven.
		w.LastSpawnTime = w.Elapsed
	}

	for i := range w.Items {
		w.Items[i].Step(w.Elapsed)
	}
}

// spawnItem creates one item with freshly randomized parameters and appends
// it, evicting the oldest item first if the collection is full. Spawning
// cannot fail: every parameter is drawn from a bounded range.
func (w *World) spawnItem() {
	it := FlyingItem{
		Id:            w.NextId,
		LateralOffset: w.Rand.RFloat(-w.Params.MaxLateralOffset, w.Params.MaxLateralOffset),
		DepthOffset:   w.Rand.RFloat(-w.Params.MaxDepthOffset, w.Params.MaxDepthOffset),
		Speed:         w.Rand.RFloat(w.Params.MinSpeed, w.Params.MaxSpeed),
		Variant:       Variant(w.Rand.RInt(0, int64(NVariants)-1)),
		ScaleJitter:   w.Rand.RFloat(w.Params.MinScaleJitter, w.Params.MaxScaleJitter),
	}
	it.SpinRate = Vec3{
		X: w.Rand.RFloat(-w.Params.MaxSpinRate, w.Params.MaxSpinRate),
		Y: w.Rand.RFloat(-w.Params.MaxSpinRate, w.Params.MaxSpinRate),
		Z: w.Rand.RFloat(-w.Params.MaxSpinRate, w.Params.MaxSpinRate),
	}
	w.NextId++
	w.NSpawned++

	// Evict before appending so the capacity bound holds at every point in
	// this function, not just at its end.
	if int64(len(w.Items)) >= w.Params.MaxItems {
		// FIFO: Items is ordered oldest first, so the victim is the head.
		// Evicting drops the item's animator state with it; there is nothing
		// else to tear down.
		copy(w.Items, w.Items[1:])
		w.Items = w.Items[:len(w.Items)-1]
	}
	w.Items = append(w.Items, it)
	Assert(int64(len(w.Items)) <= w.Params.MaxItems)
}

// NewestItem returns the most recently spawned active item, or nil if the
// scene is empty. Only used by the debug overlay.
func (w *World) NewestItem() *FlyingItem {
	if len(w.Items) == 0 {
		return nil
	}
	return &w.Items[len(w.Items)-1]
}
