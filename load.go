package main

import (
	"embed"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadGuiData loads the config and (re)builds everything derived from it.
// It is called once at startup and again by the dev-mode live-reload
// whenever data/ changes on disk.
func (g *Gui) LoadGuiData() {
	// When reading from the disk, read over and over until a full read is
	// possible. This repetition avoids crashing because an editor was caught
	// mid-write to the yaml. It's a hack but a very useful one for the
	// live-reload workflow. When reading from the embedded filesystem, the
	// files can't be mid-write, and we want to crash immediately on any
	// error: in the browser that shows up in the developer console instead
	// of a page that silently keeps retrying.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled && FileExists(g.FSys, "data/config-dev.yaml") {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.prims = BuildPrimitives()
	g.animBeamGlow = NewAnimation(g.prims.BeamFrames)

	// The debug overlay font. goregular ships with the x/image module so
	// there is no font file to load.
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)
	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}
