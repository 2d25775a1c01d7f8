package main

import (
	"embed"
	"image"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion labels the build of the scene that a visitor actually saw.
// It is sent along with every session-stats upload so that the stats table
// can be split by what was on the page at the time. Bump it whenever the
// scene changes in a way a visitor could notice: new constants in
// config.yaml, new primitives, new motion. There is no compatibility story
// attached to it, it is purely a tracking label.
const ReleaseVersion = 3

//go:embed data/*
var embeddedFiles embed.FS

// Config is everything data/config.yaml controls. The scene parameters are
// split into their own struct because the World wants them as one value.
type Config struct {
	Scene SceneParams `yaml:"Scene"`
	// Seed for the scene's random generator. 0 means seed from the clock,
	// which is what the released scene does; the dev config pins a seed so a
	// constant being tuned always shows the same stream of items.
	Seed             int64 `yaml:"Seed"`
	ShowDebugOverlay bool  `yaml:"ShowDebugOverlay"`
	UploadStats      bool  `yaml:"UploadStats"`
}

// SessionStats is a snapshot of one viewing session, uploaded periodically
// so we can tell how long visitors actually keep the scene on screen.
// Note that this is about the session, not the scene: no scene state is
// saved or restored anywhere, every page load starts a fresh scene.
type SessionStats struct {
	Frames       int64   `yaml:"Frames"`
	Seconds      float64 `yaml:"Seconds"`
	ItemsSpawned int64   `yaml:"ItemsSpawned"`
}

type Animations struct {
	animBeamGlow Animation
}

type Gui struct {
	Config
	Animations
	world              World
	visWorld           VisWorld
	prims              Primitives
	FSys               FS
	folderWatcher      FolderWatcher
	defaultFont        font.Face
	frameIdx           int64
	gameArea           image.Rectangle
	paused             bool
	showDebugOverlay   bool
	devModeEnabled     bool
	visitor            string
	sessionId          uuid.UUID
	uploadStatsChannel chan SessionStats
	pressedKeys        []ebiten.Key
	justPressedKeys    []ebiten.Key // keys pressed in this frame
}

// StatsUploadEveryNFrames is how often a session snapshot is pushed to the
// upload goroutine. 600 frames is 10 seconds at 60 TPS; fine-grained enough
// for "how long do people watch this", cheap enough to not matter.
const StatsUploadEveryNFrames = 600

func main() {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Forgegate")

	var g Gui
	g.visitor = getVisitorTag()
	g.sessionId = uuid.New()

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher: check if the folder contents changed and
		// do nothing with the result, so the watcher records the current
		// timestamps. Otherwise the first Update() would see "everything
		// changed" and pointlessly reload the config it just loaded.
		g.folderWatcher.FolderContentsChanged()
	}

	if len(os.Args) == 2 && os.Args[1] == "developer-mode-enabled" {
		g.devModeEnabled = true
	}

	g.LoadGuiData()

	seed := g.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.world = NewWorld(g.Scene, seed)
	g.visWorld = NewVisWorld(g.Animations)
	g.showDebugOverlay = g.ShowDebugOverlay || g.devModeEnabled

	// A channel size of 10 means the channel buffers 10 snapshots before
	// send attempts start being dropped. The uploader only falls behind if
	// the network is bad, and dropping stats is the right call then: the
	// scene must never stall on telemetry.
	g.uploadStatsChannel = make(chan SessionStats, 10)
	go UploadSessionStats(g.visitor, g.sessionId, g.uploadStatsChannel)

	err := ebiten.RunGame(&g)
	Check(err)
}

// UploadSessionStats runs on its own goroutine and forwards every snapshot
// it receives. In builds without the http_enabled tag the upload function is
// a no-op and this goroutine just drains the channel.
func UploadSessionStats(visitor string, id uuid.UUID, ch chan SessionStats) {
	for stats := range ch {
		UploadSessionStatsHttp(visitor, ReleaseVersion, id, stats)
	}
}

// CurrentStats snapshots the session for an upload or a dev-mode dump.
func (g *Gui) CurrentStats() SessionStats {
	return SessionStats{
		Frames:       g.frameIdx,
		Seconds:      g.world.Elapsed,
		ItemsSpawned: g.world.NSpawned,
	}
}
