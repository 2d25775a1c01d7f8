package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update is the per-frame tick that ebitengine drives at a fixed 60 TPS.
// That single callback is the only clock in the program: it advances the
// World by SimDt, the World advances everything else. The released scene
// takes no input at all; every key below exists for tuning the scene in dev
// mode.
func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	stepOneFrame := false
	if g.devModeEnabled {
		if g.JustPressed(ebiten.KeySpace) {
			g.paused = !g.paused
		}
		if g.paused && g.JustPressed(ebiten.KeyRight) {
			stepOneFrame = true
		}
		if g.JustPressed(ebiten.KeyD) {
			g.showDebugOverlay = !g.showDebugOverlay
		}
		if g.JustPressed(ebiten.KeyS) {
			// Dump the session next to the binary; handy when comparing
			// tuning runs. A no-op in the browser.
			WriteFile("scene-stats.yaml", MarshalYAML(g.CurrentStats()))
		}

		// Live-reload the config when anything under data/ changes, so the
		// scene constants can be tuned by editing the yaml and watching the
		// running scene react. The world keeps its items; only its
		// parameters are swapped.
		if g.folderWatcher.FolderContentsChanged() {
			g.LoadGuiData()
			g.world.Params = g.Scene
			g.visWorld = NewVisWorld(g.Animations)
		}
	}

	if !g.paused || stepOneFrame {
		g.world.Step(SimDt)
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}

	if g.UploadStats && g.frameIdx > 0 && g.frameIdx%StatsUploadEveryNFrames == 0 {
		select {
		case g.uploadStatsChannel <- g.CurrentStats():
		default:
			// The uploader is behind; drop the snapshot rather than block
			// the frame.
		}
	}

	return nil
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}
