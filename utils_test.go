package main

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShippedConfigs(t *testing.T) {
	fsys := os.DirFS(".").(FS)

	// Both shipped configs must parse and describe a sane scene; a broken
	// yaml would otherwise only show up as a crash on page load.
	for _, name := range []string{"data/config.yaml", "data/config-dev.yaml"} {
		var cfg Config
		LoadYAML(fsys, name, &cfg)
		assert.Greater(t, cfg.Scene.MaxItems, int64(0), name)
		assert.Greater(t, cfg.Scene.SpawnInterval, 0.0, name)
		assert.Less(t, cfg.Scene.SpawnX, -cfg.Scene.ZoneHalfWidth, name)
		assert.LessOrEqual(t, cfg.Scene.MinSpeed, cfg.Scene.MaxSpeed, name)
		assert.LessOrEqual(t, cfg.Scene.MinScaleJitter, cfg.Scene.MaxScaleJitter, name)
		// The visibility threshold must hide a fully blended-out component
		// even with the largest jitter (see VisibleScaleThreshold).
		assert.Less(t, ScaleEpsilon*cfg.Scene.MaxScaleJitter,
			VisibleScaleThreshold, name)
	}
}

func TestMarshalYAMLRoundTripsSessionStats(t *testing.T) {
	stats := SessionStats{Frames: 7200, Seconds: 120, ItemsSpawned: 80}
	data := MarshalYAML(stats)
	require.NotEmpty(t, data)

	var back SessionStats
	err := yaml.Unmarshal(data, &back)
	require.NoError(t, err)
	assert.Equal(t, stats, back)
}
