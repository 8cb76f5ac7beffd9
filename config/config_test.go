package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxelview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, LayoutSingle, cfg.Chunk.Layout)
	assert.InDelta(t, 0.1, cfg.Camera.Step, 1e-6)
}

func TestLoad(t *testing.T) {
	t.Run("no path and no env uses defaults", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := writeConfig(t, `
window:
  width: 800
  height: 600
chunk:
  layout: layers
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 800, cfg.Window.Width)
		assert.Equal(t, 600, cfg.Window.Height)
		assert.Equal(t, LayoutLayers, cfg.Chunk.Layout)
		assert.Equal(t, "voxelview", cfg.Window.Title)
		assert.Len(t, cfg.Blocks, 3)
	})

	t.Run("env fallback", func(t *testing.T) {
		path := writeConfig(t, "log:\n  level: debug\n")
		t.Setenv(EnvConfigPath, path)
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid layout rejected", func(t *testing.T) {
		path := writeConfig(t, "chunk:\n  layout: spiral\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spiral")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"no blocks", func(c *Config) { c.Blocks = nil; c.Chunk.EditBlock = "" }},
		{"unknown edit block", func(c *Config) { c.Chunk.EditBlock = "minecraft:block/glass" }},
		{"chunk x overflows origin", func(c *Config) { c.Chunk.X = MaxChunkCoord + 1 }},
		{"chunk z overflows origin", func(c *Config) { c.Chunk.Z = -MaxChunkCoord - 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestChunkRangeEdges(t *testing.T) {
	cfg := Default()
	cfg.Chunk.X, cfg.Chunk.Z = MaxChunkCoord, -MaxChunkCoord
	assert.NoError(t, cfg.Validate())

	path := writeConfig(t, "chunk:\n  x: 200000000\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestTextureIDDefaultsToName(t *testing.T) {
	assert.Equal(t, "minecraft:block/dirt", BlockConfig{Name: "minecraft:block/dirt"}.TextureID())
	assert.Equal(t, "minecraft:block/glass", BlockConfig{Name: "glass", Texture: "minecraft:block/glass"}.TextureID())
}

func TestSampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "voxelview.yaml"))
	require.NoError(t, err)
	assert.Equal(t, LayoutLayers, cfg.Chunk.Layout)
	require.Len(t, cfg.Blocks, 3)
	assert.Equal(t, "minecraft:block/grass_block_top", cfg.Blocks[2].TextureID())
	assert.Equal(t, "minecraft:block/stone", cfg.Blocks[0].TextureID())
}
