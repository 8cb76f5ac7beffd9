package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path is given.
const EnvConfigPath = "VOXELVIEW_CONFIG"

// Config is the root of the viewer configuration. Every constructor receives
// the part it needs from here; nothing is read from package globals.
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Assets AssetsConfig  `yaml:"assets"`
	Camera CameraConfig  `yaml:"camera"`
	Chunk  ChunkConfig   `yaml:"chunk"`
	Blocks []BlockConfig `yaml:"blocks"`
	Log    LogConfig     `yaml:"log"`
	Debug  DebugConfig   `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  bool   `yaml:"vsync"`
}

type AssetsConfig struct {
	AssetRoot  string `yaml:"asset_root"`
	ShaderRoot string `yaml:"shader_root"`
	// Font is an optional TTF path for the debug overlay.
	Font string `yaml:"font"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Step     float32    `yaml:"step"`
}

type ChunkConfig struct {
	X      int32  `yaml:"x"`
	Z      int32  `yaml:"z"`
	Layout string `yaml:"layout"`
	Seed   int64  `yaml:"seed"`
	// EditBlock is placed by the toggle key.
	EditBlock string `yaml:"edit_block"`
}

type BlockConfig struct {
	Name        string `yaml:"name"`
	Texture     string `yaml:"texture"`
	Transparent bool   `yaml:"transparent"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

const (
	LayoutSingle  = "single"
	LayoutLayers  = "layers"
	LayoutTerrain = "terrain"
	LayoutHills   = "hills"
)

// Default returns a complete configuration for the demo scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1600,
			Height: 900,
			Title:  "voxelview",
			Vsync:  false,
		},
		Assets: AssetsConfig{
			AssetRoot:  "res/assets",
			ShaderRoot: "res/shaders",
		},
		Camera: CameraConfig{
			Position: [3]float32{-4, 3, -4},
			Yaw:      0.785,
			Pitch:    -0.3,
			Fov:      70,
			Near:     0.1,
			Far:      350,
			Step:     0.1,
		},
		Chunk: ChunkConfig{
			Layout:    LayoutSingle,
			Seed:      12,
			EditBlock: "minecraft:block/stone",
		},
		Blocks: []BlockConfig{
			{Name: "minecraft:block/stone"},
			{Name: "minecraft:block/dirt"},
			{Name: "minecraft:block/grass_block", Texture: "minecraft:block/grass_block_top"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			Overlay: true,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// VOXELVIEW_CONFIG; with neither set the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first inconsistency found.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if len(c.Blocks) == 0 {
		return errors.New("at least one block must be configured")
	}
	if outOfChunkRange(c.Chunk.X) || outOfChunkRange(c.Chunk.Z) {
		return fmt.Errorf("chunk %d,%d outside +/-%d", c.Chunk.X, c.Chunk.Z, MaxChunkCoord)
	}
	switch c.Chunk.Layout {
	case LayoutSingle, LayoutLayers, LayoutTerrain, LayoutHills:
	default:
		return fmt.Errorf("unknown chunk layout %q", c.Chunk.Layout)
	}
	if c.Chunk.EditBlock != "" && !c.HasBlock(c.Chunk.EditBlock) {
		return fmt.Errorf("edit_block %q is not in the block list", c.Chunk.EditBlock)
	}
	return nil
}

// MaxChunkCoord keeps chunk origins (coordinate * 16 blocks) inside int32.
const MaxChunkCoord = math.MaxInt32 / 16

func outOfChunkRange(v int32) bool {
	return v > MaxChunkCoord || v < -MaxChunkCoord
}

// HasBlock reports whether name is one of the configured blocks.
func (c *Config) HasBlock(name string) bool {
	for _, b := range c.Blocks {
		if b.Name == name {
			return true
		}
	}
	return false
}

// TextureID returns the texture identifier of a block entry, which defaults
// to the block name.
func (b BlockConfig) TextureID() string {
	if b.Texture != "" {
		return b.Texture
	}
	return b.Name
}
