package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/assets"
	"voxelview/camera"
	"voxelview/config"
	"voxelview/logging"
	"voxelview/loop"
	"voxelview/mesher"
	"voxelview/metrics"
	"voxelview/render"
	"voxelview/world"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("c", "", "path to YAML config (default $"+config.EnvConfigPath+")")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}

func buildCatalog(blocks []config.BlockConfig) (*world.Catalog, error) {
	types := make([]world.BlockType, 0, len(blocks))
	for _, b := range blocks {
		types = append(types, world.BlockType{
			Name:        b.Name,
			Texture:     b.TextureID(),
			Transparent: b.Transparent,
		})
	}
	return world.NewCatalog(types)
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}
	log := logging.Default()
	defer log.Close()

	log.Info("Loading block catalog")
	catalog, err := buildCatalog(cfg.Blocks)
	if err != nil {
		return err
	}

	log.Info("Generating texture atlas")
	textures := make([]string, 0, catalog.Len())
	for _, t := range catalog.Types() {
		textures = append(textures, t.Texture)
	}
	atlas, err := assets.BuildAtlas(assets.Dir{Root: cfg.Assets.AssetRoot}, textures, assets.DefaultTileSize)
	if err != nil {
		return err
	}

	var fontData []byte
	if cfg.Assets.Font != "" {
		if fontData, err = os.ReadFile(cfg.Assets.Font); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := openWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	source := newWindowSource(window)
	width, height := source.Size()
	renderer, err := render.New(assets.ShaderDir{Root: cfg.Assets.ShaderRoot}, atlas, render.Options{
		Width:    width,
		Height:   height,
		Overlay:  cfg.Debug.Overlay,
		FontData: fontData,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	defer renderer.Close()

	log.Info("Generating blocks")
	chunk := world.NewChunk(world.ChunkPos{X: cfg.Chunk.X, Z: cfg.Chunk.Z})
	if err := world.Populate(chunk, catalog, cfg.Chunk.Layout, cfg.Chunk.Seed); err != nil {
		return err
	}

	frame := metrics.NewFrame()
	gen := mesher.New()
	start := time.Now()
	if err := chunk.RegenerateMesh(catalog, gen); err != nil {
		return err
	}
	frame.MeshRebuilt()
	mesh, _ := chunk.Mesh()
	log.Info("Chunk mesh built: %d vertices in %s", mesh.Count, time.Since(start))
	if err := chunk.Upload(renderer); err != nil {
		return err
	}

	var edit world.BlockState
	if ref, ok := catalog.Lookup(cfg.Chunk.EditBlock); ok {
		edit = world.Solid(ref)
		if t, _ := catalog.Type(ref); t.Transparent {
			edit.Transparent = true
		}
	} else {
		edit = world.Solid(1)
	}

	l, err := loop.New(loop.Options{
		Source:    source,
		Presenter: renderer,
		Chunk:     chunk,
		Catalog:   catalog,
		Generator: gen,
		Camera:    camera.New(cfg.Camera),
		Mapper:    camera.NewMapper(cfg.Camera.Step),
		EditBlock: edit,
		Metrics:   frame,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	l.MarkUploaded()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("Starting rendering")
	err = l.Run(ctx)

	s := frame.Snapshot()
	log.Info("Rendered %d frames, mean %.2f ms, %d mesh rebuilds, errors %v",
		s.Frames, s.MeanFrameMs, s.MeshRebuilds, s.Errors)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
